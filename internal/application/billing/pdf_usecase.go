// Package billing genera la factura en PDF de una venta.
package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/application/ports"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// PDFUseCase arma los datos de la venta y delega el render en el generador.
type PDFUseCase struct {
	uow       repository.UnitOfWork
	generator ports.InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(uow repository.UnitOfWork, generator ports.InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{uow: uow, generator: generator}
}

// DownloadInvoicePDF recupera la venta con su cliente, vendedor y productos y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - NotFound                   si la venta o su cliente no existen.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	repos := uc.uow.Repos()

	// ── 1. Cargar venta ───────────────────────────────────────────────────────
	sale, err := repos.Sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.NotFound("Sale", saleID)
	}

	// ── 2. Cargar cliente ─────────────────────────────────────────────────────
	customer, err := repos.Customers.GetByID(ctx, sale.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.NotFound("Customer", sale.CustomerID)
	}

	// ── 3. Vendedor (opcional) ────────────────────────────────────────────────
	seller, err := repos.Users.GetByID(ctx, sale.SalesPersonID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener vendedor: %w", err)
	}

	// ── 4. Líneas enriquecidas con el nombre de producto ──────────────────────
	lines := make([]ports.SaleInvoiceLine, 0, len(sale.Lines))
	for _, l := range sale.Lines {
		name := "Producto " + l.ProductID // fallback
		if product, pErr := repos.Products.GetByID(ctx, l.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, ports.SaleInvoiceLine{
			ProductName: name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalPrice:  l.TotalPrice,
		})
	}

	// ── 5. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateSaleInvoice(ctx, ports.SaleInvoice{
		Sale:        sale,
		Customer:    customer,
		SalesPerson: seller,
		Lines:       lines,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s.pdf", sale.InvoiceNumber)
	return pdfBytes, filename, nil
}
