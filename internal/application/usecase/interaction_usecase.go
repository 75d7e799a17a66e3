package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// InteractionUseCase contactos registrados con clientes. Las respuestas llevan
// el nombre completo del cliente.
type InteractionUseCase struct {
	base
}

func NewInteractionUseCase(uow repository.UnitOfWork) *InteractionUseCase {
	return &InteractionUseCase{base: newBase(uow)}
}

func (uc *InteractionUseCase) List(ctx context.Context) ([]dto.InteractionResponse, error) {
	repos := uc.uow.Repos()
	list, err := repos.Interactions.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := repos.Customers.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.FullName()
	}
	return mapAll(list, func(i *entity.Interaction) dto.InteractionResponse {
		return toInteractionResponse(i, names[i.CustomerID])
	}), nil
}

func (uc *InteractionUseCase) ListByCustomer(ctx context.Context, customerID string) ([]dto.InteractionResponse, error) {
	repos := uc.uow.Repos()
	list, err := repos.Interactions.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	name, err := customerName(ctx, repos, customerID)
	if err != nil {
		return nil, err
	}
	return mapAll(list, func(i *entity.Interaction) dto.InteractionResponse {
		return toInteractionResponse(i, name)
	}), nil
}

func (uc *InteractionUseCase) GetByID(ctx context.Context, id string) (*dto.InteractionResponse, error) {
	repos := uc.uow.Repos()
	i, err := repos.Interactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.NotFound("Interaction", id)
	}
	name, err := customerName(ctx, repos, i.CustomerID)
	if err != nil {
		return nil, err
	}
	out := toInteractionResponse(i, name)
	return &out, nil
}

// Create el cliente debe existir; InteractionDate omitida toma la hora actual.
func (uc *InteractionUseCase) Create(ctx context.Context, in dto.InteractionRequest) (*dto.InteractionResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := uc.now()
	i := &entity.Interaction{ID: uuid.New().String(), CreatedAt: now}
	applyInteraction(i, in, now)
	var name string
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		c, err := r.Customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("Customer", in.CustomerID)
		}
		name = c.FullName()
		return r.Interactions.Create(ctx, i)
	})
	if err != nil {
		return nil, err
	}
	out := toInteractionResponse(i, name)
	return &out, nil
}

func (uc *InteractionUseCase) Update(ctx context.Context, id string, in dto.InteractionRequest) (*dto.InteractionResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var (
		i    *entity.Interaction
		name string
	)
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		var err error
		if i, err = r.Interactions.GetByID(ctx, id); err != nil {
			return err
		}
		if i == nil {
			return domain.NotFound("Interaction", id)
		}
		c, err := r.Customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("Customer", in.CustomerID)
		}
		name = c.FullName()
		now := uc.now()
		applyInteraction(i, in, i.InteractionDate)
		i.UpdatedAt = &now
		return r.Interactions.Update(ctx, i)
	})
	if err != nil {
		return nil, err
	}
	out := toInteractionResponse(i, name)
	return &out, nil
}

func (uc *InteractionUseCase) Delete(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(r repository.Repos) error {
		i, err := r.Interactions.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if i == nil {
			return domain.NotFound("Interaction", id)
		}
		return r.Interactions.Delete(ctx, id)
	})
}

func customerName(ctx context.Context, r repository.Repos, id string) (string, error) {
	c, err := r.Customers.GetByID(ctx, id)
	if err != nil || c == nil {
		return "", err
	}
	return c.FullName(), nil
}

// applyInteraction sin fecha en la entrada se usa fallback.
func applyInteraction(i *entity.Interaction, in dto.InteractionRequest, fallback time.Time) {
	i.CustomerID = in.CustomerID
	i.Type = in.Type
	i.Content = in.Content
	i.InteractionDate = fallback
	if in.InteractionDate != nil {
		i.InteractionDate = *in.InteractionDate
	}
}

func toInteractionResponse(i *entity.Interaction, customerFullName string) dto.InteractionResponse {
	return dto.InteractionResponse{
		ID:               i.ID,
		CustomerID:       i.CustomerID,
		CustomerFullName: customerFullName,
		Type:             i.Type,
		Content:          i.Content,
		InteractionDate:  i.InteractionDate,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}
