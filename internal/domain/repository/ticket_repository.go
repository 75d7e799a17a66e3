package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	List(ctx context.Context) ([]*entity.Ticket, error)
	// ListByUser tickets cuyo dueño es userID.
	ListByUser(ctx context.Context, userID string) ([]*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	Delete(ctx context.Context, id string) error
}
