package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// TaskRequest entrada de creación y actualización de tareas.
type TaskRequest struct {
	AssignedEmployeeID string              `json:"assignedEmployeeId" validate:"required"`
	CustomerID         *string             `json:"customerId"`
	Title              string              `json:"title" validate:"required,max=200"`
	Description        string              `json:"description"`
	DueDate            time.Time           `json:"dueDate" validate:"required"`
	Priority           entity.TaskPriority `json:"priority" validate:"required,enum" swaggertype:"string"`
	Status             entity.TaskStatus   `json:"status" validate:"omitempty,enum" swaggertype:"string"`
	Type               entity.TaskType     `json:"type" validate:"required,enum" swaggertype:"string"`
}

type TaskResponse struct {
	ID                 string              `json:"id"`
	AssignedEmployeeID string              `json:"assignedEmployeeId"`
	CustomerID         *string             `json:"customerId,omitempty"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	DueDate            time.Time           `json:"dueDate"`
	Priority           entity.TaskPriority `json:"priority" swaggertype:"string"`
	Status             entity.TaskStatus   `json:"status" swaggertype:"string"`
	Type               entity.TaskType     `json:"type" swaggertype:"string"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          *time.Time          `json:"updatedAt,omitempty"`
}
