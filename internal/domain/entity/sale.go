package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus etapa de la venta.
type SaleStatus int

const (
	SaleStatusProposal SaleStatus = iota + 1
	SaleStatusNegotiation
	SaleStatusAccepted
	SaleStatusRejected
	SaleStatusCompleted
)

var saleStatuses = enumSet[SaleStatus]{label: "sale status", names: []string{
	"Proposal", "Negotiation", "Accepted", "Rejected", "Completed",
}}

func (s SaleStatus) String() string { return saleStatuses.name(s) }
func (s SaleStatus) Valid() bool { return saleStatuses.valid(s) }
func (s SaleStatus) MarshalJSON() ([]byte, error) { return saleStatuses.marshal(s) }
func (s *SaleStatus) UnmarshalJSON(b []byte) (err error) {
	*s, err = saleStatuses.unmarshal(b)
	return err
}
func ParseSaleStatus(s string) (SaleStatus, error) { return saleStatuses.parse(s) }

// Sale cabecera de venta con sus líneas en orden.
type Sale struct {
	ID            string
	SaleDate      time.Time
	CustomerID    string
	SalesPersonID string
	TotalAmount   decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	FinalAmount   decimal.Decimal
	Status        SaleStatus
	InvoiceNumber string
	Lines         []SaleLine
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// SaleLine línea de producto de una venta.
type SaleLine struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// NewSaleLine calcula TotalPrice = Quantity × UnitPrice.
func NewSaleLine(id, saleID, productID string, qty int, unitPrice decimal.Decimal) SaleLine {
	return SaleLine{
		ID:         id,
		SaleID:     saleID,
		ProductID:  productID,
		Quantity:   qty,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// DefaultInvoiceNumber INV-yyyyMMddHHmmssfff en UTC.
func DefaultInvoiceNumber(now time.Time) string {
	u := now.UTC()
	return fmt.Sprintf("INV-%s%03d", u.Format("20060102150405"), u.Nanosecond()/int(time.Millisecond))
}
