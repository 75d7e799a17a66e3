package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo vendible.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
