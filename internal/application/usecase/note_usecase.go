package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// NoteUseCase notas adjuntas a un cliente, prospecto, ticket, venta o tarea.
type NoteUseCase struct {
	base
}

func NewNoteUseCase(uow repository.UnitOfWork) *NoteUseCase {
	return &NoteUseCase{base: newBase(uow)}
}

func (uc *NoteUseCase) List(ctx context.Context) ([]dto.NoteResponse, error) {
	list, err := uc.uow.Repos().Notes.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toNoteResponse), nil
}

// ListFor notas de un padre; un padre sin notas devuelve lista vacía.
func (uc *NoteUseCase) ListFor(ctx context.Context, kind entity.ParentKind, parentID string) ([]dto.NoteResponse, error) {
	parent, err := entity.NewParentRef(kind, parentID)
	if err != nil {
		return nil, domain.ValidationField("ParentID", err.Error())
	}
	list, err := uc.uow.Repos().Notes.ListByParent(ctx, parent)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toNoteResponse), nil
}

func (uc *NoteUseCase) GetByID(ctx context.Context, id string) (*dto.NoteResponse, error) {
	n, err := uc.uow.Repos().Notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.NotFound("Note", id)
	}
	out := toNoteResponse(n)
	return &out, nil
}

// Create el padre debe existir.
func (uc *NoteUseCase) Create(ctx context.Context, in dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	parent, err := entity.NewParentRef(in.ParentType, in.ParentID)
	if err != nil {
		return nil, domain.ValidationField("ParentType", err.Error())
	}
	n := &entity.Note{
		ID:        uuid.New().String(),
		Content:   strings.TrimSpace(in.Content),
		Parent:    parent,
		CreatedAt: uc.now(),
	}
	err = uc.uow.Run(ctx, func(r repository.Repos) error {
		if err := checkParent(ctx, r, parent); err != nil {
			return err
		}
		return r.Notes.Create(ctx, n)
	})
	if err != nil {
		return nil, err
	}
	out := toNoteResponse(n)
	return &out, nil
}

// Update solo cambia el contenido; el padre es inmutable.
func (uc *NoteUseCase) Update(ctx context.Context, id string, in dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var n *entity.Note
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		var err error
		if n, err = r.Notes.GetByID(ctx, id); err != nil {
			return err
		}
		if n == nil {
			return domain.NotFound("Note", id)
		}
		n.Content = strings.TrimSpace(in.Content)
		n.UpdatedAt = ptrTime(uc.now())
		return r.Notes.Update(ctx, n)
	})
	if err != nil {
		return nil, err
	}
	out := toNoteResponse(n)
	return &out, nil
}

func (uc *NoteUseCase) Delete(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(r repository.Repos) error {
		n, err := r.Notes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if n == nil {
			return domain.NotFound("Note", id)
		}
		return r.Notes.Delete(ctx, id)
	})
}

func checkParent(ctx context.Context, r repository.Repos, p entity.ParentRef) error {
	var (
		found bool
		err   error
	)
	switch p.Kind() {
	case entity.ParentCustomer:
		found, err = exists(r.Customers.GetByID(ctx, p.ID()))
	case entity.ParentLead:
		found, err = exists(r.Leads.GetByID(ctx, p.ID()))
	case entity.ParentTicket:
		found, err = exists(r.Tickets.GetByID(ctx, p.ID()))
	case entity.ParentSale:
		found, err = exists(r.Sales.GetByID(ctx, p.ID()))
	case entity.ParentTask:
		found, err = exists(r.Tasks.GetByID(ctx, p.ID()))
	}
	if err != nil {
		return err
	}
	if !found {
		return domain.NotFound(p.Kind().String(), p.ID())
	}
	return nil
}

func exists[T any](v *T, err error) (bool, error) {
	return v != nil, err
}

func toNoteResponse(n *entity.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:         n.ID,
		Content:    n.Content,
		ParentType: n.Parent.Kind(),
		ParentID:   n.Parent.ID(),
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}
