package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// NoteRepository persiste notas; ListByParent filtra por el ParentRef completo.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	GetByID(ctx context.Context, id string) (*entity.Note, error)
	List(ctx context.Context) ([]*entity.Note, error)
	ListByParent(ctx context.Context, parent entity.ParentRef) ([]*entity.Note, error)
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id string) error
}
