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

// LeadUseCase CRUD de prospectos.
type LeadUseCase struct {
	base
}

func NewLeadUseCase(uow repository.UnitOfWork) *LeadUseCase {
	return &LeadUseCase{base: newBase(uow)}
}

func (uc *LeadUseCase) List(ctx context.Context) ([]dto.LeadResponse, error) {
	list, err := uc.uow.Repos().Leads.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toLeadResponse), nil
}

func (uc *LeadUseCase) GetByID(ctx context.Context, id string) (*dto.LeadResponse, error) {
	l, err := uc.uow.Repos().Leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.NotFound("Lead", id)
	}
	out := toLeadResponse(l)
	return &out, nil
}

// Create si Notes no está en blanco, la nota se guarda en la misma transacción.
func (uc *LeadUseCase) Create(ctx context.Context, in dto.LeadRequest) (*dto.LeadResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := uc.now()
	l := &entity.Lead{ID: uuid.New().String(), Status: entity.LeadStatusNew, CreatedAt: now}
	applyLead(l, in)
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		if err := r.Leads.Create(ctx, l); err != nil {
			return err
		}
		content := strings.TrimSpace(in.Notes)
		if content == "" {
			return nil
		}
		return r.Notes.Create(ctx, &entity.Note{
			ID:        uuid.New().String(),
			Content:   content,
			Parent:    entity.LeadParent(l.ID),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	out := toLeadResponse(l)
	return &out, nil
}

// Update sobrescribe todos los campos editables; Notes se ignora.
func (uc *LeadUseCase) Update(ctx context.Context, id string, in dto.LeadRequest) (*dto.LeadResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var l *entity.Lead
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		var err error
		if l, err = r.Leads.GetByID(ctx, id); err != nil {
			return err
		}
		if l == nil {
			return domain.NotFound("Lead", id)
		}
		applyLead(l, in)
		l.UpdatedAt = ptrTime(uc.now())
		return r.Leads.Update(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	out := toLeadResponse(l)
	return &out, nil
}

func (uc *LeadUseCase) Delete(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(r repository.Repos) error {
		l, err := r.Leads.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return domain.NotFound("Lead", id)
		}
		return r.Leads.Delete(ctx, id)
	})
}

// applyLead un Status vacío conserva el actual.
func applyLead(l *entity.Lead, in dto.LeadRequest) {
	l.CompanyName = in.CompanyName
	l.ContactName = in.ContactName
	l.Email = in.Email
	l.Phone = in.Phone
	l.Source = in.Source
	if in.Status != 0 {
		l.Status = in.Status
	}
	l.Industry = in.Industry
	l.IsConverted = in.IsConverted
}

func toLeadResponse(l *entity.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:          l.ID,
		CompanyName: l.CompanyName,
		ContactName: l.ContactName,
		Email:       l.Email,
		Phone:       l.Phone,
		Source:      l.Source,
		Status:      l.Status,
		Industry:    l.Industry,
		IsConverted: l.IsConverted,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
