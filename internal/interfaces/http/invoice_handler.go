package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/billing"
)

// InvoiceHandler descarga de la factura PDF de una venta.
type InvoiceHandler struct {
	uc *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// DownloadPDF godoc
// @Summary      Descargar factura PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Response[any]
// @Router       /api/sales/{id}/invoice.pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.DownloadInvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdf)
}
