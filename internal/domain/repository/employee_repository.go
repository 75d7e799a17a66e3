package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id string) error
}
