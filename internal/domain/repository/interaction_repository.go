package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *entity.Interaction) error
	GetByID(ctx context.Context, id string) (*entity.Interaction, error)
	List(ctx context.Context) ([]*entity.Interaction, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Interaction, error)
	Update(ctx context.Context, interaction *entity.Interaction) error
	Delete(ctx context.Context, id string) error
}
