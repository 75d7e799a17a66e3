package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context) ([]*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
}
