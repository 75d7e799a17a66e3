package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// SaleRequest entrada de creación y actualización de ventas.
// SaleDate vacío toma la hora actual; SalesPersonID vacío toma el usuario del token;
// InvoiceNumber vacío genera INV-<fecha UTC>.
type SaleRequest struct {
	SaleDate      *time.Time        `json:"saleDate"`
	CustomerID    string            `json:"customerId" validate:"required"`
	SalesPersonID string            `json:"salesPersonId" validate:"omitempty,uuid"`
	TotalAmount   decimal.Decimal   `json:"totalAmount" swaggertype:"string"`
	Discount      decimal.Decimal   `json:"discount" swaggertype:"string"`
	Tax           decimal.Decimal   `json:"tax" swaggertype:"string"`
	FinalAmount   decimal.Decimal   `json:"finalAmount" swaggertype:"string"`
	Status        entity.SaleStatus `json:"status" validate:"omitempty,enum" swaggertype:"string"`
	InvoiceNumber string            `json:"invoiceNumber" validate:"max=50"`
	Products      []SaleLineRequest `json:"products" validate:"dive"`
}

// SaleLineRequest línea de la venta. Las líneas con producto inexistente se descartan.
type SaleLineRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" swaggertype:"string"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	SaleDate      time.Time          `json:"saleDate"`
	CustomerID    string             `json:"customerId"`
	SalesPersonID string             `json:"salesPersonId"`
	TotalAmount   decimal.Decimal    `json:"totalAmount" swaggertype:"string"`
	Discount      decimal.Decimal    `json:"discount" swaggertype:"string"`
	Tax           decimal.Decimal    `json:"tax" swaggertype:"string"`
	FinalAmount   decimal.Decimal    `json:"finalAmount" swaggertype:"string"`
	Status        entity.SaleStatus  `json:"status" swaggertype:"string"`
	InvoiceNumber string             `json:"invoiceNumber"`
	SaleProducts  []SaleLineResponse `json:"saleProducts"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     *time.Time         `json:"updatedAt,omitempty"`
}

type SaleLineResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	TotalPrice  decimal.Decimal `json:"totalPrice" swaggertype:"string"`
}
