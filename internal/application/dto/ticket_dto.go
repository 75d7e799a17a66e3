package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CreateTicketRequest el dueño del ticket sale del token.
type CreateTicketRequest struct {
	Description string `json:"description" validate:"required,max=4000"`
}

// UpdateTicketRequest actualización parcial: FinalSolution solo si no está en blanco,
// Status y AssignedEmployeeID solo si vienen.
type UpdateTicketRequest struct {
	Description        string               `json:"description" validate:"max=4000"`
	FinalSolution      string               `json:"finalSolution"`
	Status             *entity.TicketStatus `json:"status" validate:"omitempty,enum" swaggertype:"string"`
	AssignedEmployeeID *string              `json:"assignedEmployeeId"`
}

type AssignTicketRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}

type ChangeTicketStatusRequest struct {
	Status entity.TicketStatus `json:"status" validate:"required,enum" swaggertype:"string"`
}

type TicketResponse struct {
	ID                  string              `json:"id"`
	UserID              string              `json:"userId"`
	Description         string              `json:"description"`
	AISuggestedSolution *string             `json:"aiSuggestedSolution"`
	FinalSolution       *string             `json:"finalSolution"`
	Status              entity.TicketStatus `json:"status" swaggertype:"string"`
	AssignedEmployeeID  *string             `json:"assignedEmployeeId"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           *time.Time          `json:"updatedAt,omitempty"`
}
