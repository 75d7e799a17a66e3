package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada de creación y actualización de productos.
// IsActive nil se interpreta como true al crear y como "sin cambio" al actualizar.
type ProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" swaggertype:"string" example:"19.99"`
	StockQuantity int             `json:"stockQuantity" validate:"min=0"`
	IsActive      *bool           `json:"isActive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" swaggertype:"string"`
	StockQuantity int             `json:"stockQuantity"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}
