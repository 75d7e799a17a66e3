package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

type InteractionRequest struct {
	CustomerID      string                 `json:"customerId" validate:"required"`
	Type            entity.InteractionType `json:"type" validate:"required,enum" swaggertype:"string"`
	Content         string                 `json:"content" validate:"required"`
	InteractionDate *time.Time             `json:"interactionDate"`
}

// InteractionResponse incluye el nombre completo del cliente.
type InteractionResponse struct {
	ID               string                 `json:"id"`
	CustomerID       string                 `json:"customerId"`
	CustomerFullName string                 `json:"customerFullName"`
	Type             entity.InteractionType `json:"type" swaggertype:"string"`
	Content          string                 `json:"content"`
	InteractionDate  time.Time              `json:"interactionDate"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        *time.Time             `json:"updatedAt,omitempty"`
}
