package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// SaleInvoice datos ya resueltos para imprimir la factura de una venta.
type SaleInvoice struct {
	Sale        *entity.Sale
	Customer    *entity.Customer
	SalesPerson *entity.User // puede ser nil
	Lines       []SaleInvoiceLine
}

type SaleInvoiceLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// InvoicePDFGenerator genera la representación PDF de una venta.
type InvoicePDFGenerator interface {
	GenerateSaleInvoice(ctx context.Context, inv SaleInvoice) ([]byte, error)
}
