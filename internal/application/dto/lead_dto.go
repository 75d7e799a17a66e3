package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// LeadRequest entrada de prospectos. Notes solo se usa al crear: si no está en
// blanco se guarda como una Note ligada al prospecto.
type LeadRequest struct {
	CompanyName *string             `json:"companyName" validate:"omitempty,max=200"`
	ContactName string              `json:"contactName" validate:"required,max=200"`
	Email       string              `json:"email" validate:"omitempty,email,max=256"`
	Phone       string              `json:"phone" validate:"max=50"`
	Source      entity.LeadSource   `json:"source" validate:"required,enum" swaggertype:"string"`
	Status      entity.LeadStatus   `json:"status" validate:"omitempty,enum" swaggertype:"string"`
	Industry    entity.IndustryType `json:"industry" validate:"required,enum" swaggertype:"string"`
	IsConverted bool                `json:"isConverted"`
	Notes       string              `json:"notes"`
}

type LeadResponse struct {
	ID          string              `json:"id"`
	CompanyName *string             `json:"companyName,omitempty"`
	ContactName string              `json:"contactName"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Source      entity.LeadSource   `json:"source" swaggertype:"string"`
	Status      entity.LeadStatus   `json:"status" swaggertype:"string"`
	Industry    entity.IndustryType `json:"industry" swaggertype:"string"`
	IsConverted bool                `json:"isConverted"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   *time.Time          `json:"updatedAt,omitempty"`
}
