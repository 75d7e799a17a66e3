package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// RegisterRequest alta pública; el usuario recibe el rol Customer.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=256"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse Role es el primer rol del usuario.
type LoginResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      string   `json:"role"`
	Roles     []string `json:"roles"`
	Token     string   `json:"token"`
}

// UserResponse salida de un usuario (sin hash ni token de reset).
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Roles     []string   `json:"roles"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// UpdateUserRequest Role vacío conserva los roles actuales; si viene, los reemplaza.
type UpdateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=256"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Role      string `json:"role" validate:"max=50"`
}

type RoleRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type AdminResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// NewUserResponse roles nil se serializa como lista vacía.
func NewUserResponse(u *entity.User, roles []string) UserResponse {
	if roles == nil {
		roles = []string{}
	}
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
