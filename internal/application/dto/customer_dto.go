package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CustomerRequest entrada de creación y actualización de clientes.
type CustomerRequest struct {
	FirstName   string              `json:"firstName" validate:"required,max=100"`
	LastName    string              `json:"lastName" validate:"max=100"`
	Email       string              `json:"email" validate:"omitempty,email,max=256"`
	Phone       string              `json:"phone" validate:"max=50"`
	Address     string              `json:"address"`
	Type        entity.CustomerType `json:"type" validate:"required,enum" swaggertype:"string" enums:"Person,Business"`
	CompanyName *string             `json:"companyName" validate:"omitempty,max=200"`
	TaxNumber   *string             `json:"taxNumber" validate:"omitempty,max=50"`
	Sector      *string             `json:"sector" validate:"omitempty,max=100"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          string              `json:"id"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	FullName    string              `json:"fullName"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Address     string              `json:"address"`
	Type        entity.CustomerType `json:"type" swaggertype:"string"`
	CompanyName *string             `json:"companyName,omitempty"`
	TaxNumber   *string             `json:"taxNumber,omitempty"`
	Sector      *string             `json:"sector,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   *time.Time          `json:"updatedAt,omitempty"`
}
