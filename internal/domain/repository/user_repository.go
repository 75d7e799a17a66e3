package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// GetByEmail compara sin distinguir mayúsculas.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}

// RoleRepository roles y su asignación a usuarios (tabla user_roles).
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
	Delete(ctx context.Context, id string) error

	RolesOf(ctx context.Context, userID string) ([]string, error)
	AddUserToRole(ctx context.Context, userID, roleID string) error
	RemoveUserFromRoles(ctx context.Context, userID string, roleNames []string) error
	UsersInRole(ctx context.Context, roleName string) ([]*entity.User, error)
}
