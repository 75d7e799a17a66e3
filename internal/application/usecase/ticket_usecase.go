package usecase

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/identity"
	"github.com/jhoicas/crm-api/internal/application/ports"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// TicketUseCase tickets de soporte: alta con sugerencia de IA, asignación y estado.
type TicketUseCase struct {
	base
	ai   ports.AIAssistant
	log  *logger.Logger
	pick func(n int) int
}

// NewTicketUseCase ai puede ser nil: los tickets se crean en estado Open.
func NewTicketUseCase(uow repository.UnitOfWork, ai ports.AIAssistant, log *logger.Logger) *TicketUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TicketUseCase{base: newBase(uow), ai: ai, log: log, pick: rand.IntN}
}

func (uc *TicketUseCase) List(ctx context.Context) ([]dto.TicketResponse, error) {
	list, err := uc.uow.Repos().Tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toTicketResponse), nil
}

// ListByCustomer tickets cuyo usuario dueño tiene el id dado.
func (uc *TicketUseCase) ListByCustomer(ctx context.Context, customerID string) ([]dto.TicketResponse, error) {
	list, err := uc.uow.Repos().Tickets.ListByUser(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toTicketResponse), nil
}

func (uc *TicketUseCase) GetByID(ctx context.Context, id string) (*dto.TicketResponse, error) {
	t, err := uc.uow.Repos().Tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound("Ticket", id)
	}
	out := toTicketResponse(t)
	return &out, nil
}

// Create el dueño es el usuario del token. Con sugerencia de IA el ticket queda
// ResolvedByAI; si la IA falla queda Open sin sugerencia.
func (uc *TicketUseCase) Create(ctx context.Context, userID string, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, domain.Unauthorized()
	}
	t := &entity.Ticket{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: in.Description,
		Status:      entity.TicketStatusOpen,
		CreatedAt:   uc.now(),
	}
	if suggestion, ok := uc.suggest(ctx, t); ok {
		t.AISuggestedSolution = &suggestion
		t.Status = entity.TicketStatusResolvedByAI
	}
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		return r.Tickets.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	out := toTicketResponse(t)
	return &out, nil
}

func (uc *TicketUseCase) suggest(ctx context.Context, t *entity.Ticket) (string, bool) {
	if uc.ai == nil {
		return "", false
	}
	s, err := uc.ai.SuggestSolution(ctx, t.Description)
	if err != nil {
		uc.log.Warn().Err(err).Str("ticket_id", t.ID).Msg("sugerencia de IA no disponible, el ticket queda abierto")
		return "", false
	}
	return s, true
}

// Update FinalSolution y Description solo si no están en blanco; Status y
// AssignedEmployeeID solo si vienen. AssignedEmployeeID vacío desasigna.
func (uc *TicketUseCase) Update(ctx context.Context, id string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var t *entity.Ticket
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		var err error
		if t, err = r.Tickets.GetByID(ctx, id); err != nil {
			return err
		}
		if t == nil {
			return domain.NotFound("Ticket", id)
		}
		if strings.TrimSpace(in.Description) != "" {
			t.Description = in.Description
		}
		if strings.TrimSpace(in.FinalSolution) != "" {
			s := in.FinalSolution
			t.FinalSolution = &s
		}
		if in.Status != nil {
			t.Status = *in.Status
		}
		if in.AssignedEmployeeID != nil {
			if *in.AssignedEmployeeID == "" {
				t.AssignedEmployeeID = nil
			} else {
				if err := checkEmployee(ctx, r, *in.AssignedEmployeeID); err != nil {
					return err
				}
				eid := *in.AssignedEmployeeID
				t.AssignedEmployeeID = &eid
			}
		}
		t.UpdatedAt = ptrTime(uc.now())
		return r.Tickets.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	out := toTicketResponse(t)
	return &out, nil
}

func (uc *TicketUseCase) Delete(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(r repository.Repos) error {
		t, err := r.Tickets.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.NotFound("Ticket", id)
		}
		return r.Tickets.Delete(ctx, id)
	})
}

// AssignToEmployee el empleado debe existir; el ticket pasa a AssignedToEmployee.
func (uc *TicketUseCase) AssignToEmployee(ctx context.Context, id string, in dto.AssignTicketRequest) (*dto.TicketResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, id, func(r repository.Repos, t *entity.Ticket) error {
		if err := checkEmployee(ctx, r, in.EmployeeID); err != nil {
			return err
		}
		t.AssignTo(in.EmployeeID)
		return nil
	})
}

// AssignRandomEmployee elige al azar un usuario Support que tenga ficha de empleado.
func (uc *TicketUseCase) AssignRandomEmployee(ctx context.Context, id string) (*dto.TicketResponse, error) {
	return uc.mutate(ctx, id, func(r repository.Repos, t *entity.Ticket) error {
		if t.IsAssigned() {
			return domain.Conflict("Ticket is already assigned")
		}
		users, err := identity.New(r).UsersInRole(ctx, entity.RoleSupport)
		if err != nil {
			return err
		}
		var candidates []*entity.Employee
		for _, u := range users {
			e, err := r.Employees.GetByUserID(ctx, u.ID)
			if err != nil {
				return err
			}
			if e != nil {
				candidates = append(candidates, e)
			}
		}
		if len(candidates) == 0 {
			return &domain.Error{Kind: domain.KindNotFound, Message: "No support employees found"}
		}
		t.AssignTo(candidates[uc.pick(len(candidates))].ID)
		return nil
	})
}

func (uc *TicketUseCase) ChangeStatus(ctx context.Context, id string, in dto.ChangeTicketStatusRequest) (*dto.TicketResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, id, func(_ repository.Repos, t *entity.Ticket) error {
		t.Status = in.Status
		return nil
	})
}

// mutate carga el ticket, aplica fn y lo persiste en la misma transacción.
func (uc *TicketUseCase) mutate(ctx context.Context, id string, fn func(r repository.Repos, t *entity.Ticket) error) (*dto.TicketResponse, error) {
	var t *entity.Ticket
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		var err error
		if t, err = r.Tickets.GetByID(ctx, id); err != nil {
			return err
		}
		if t == nil {
			return domain.NotFound("Ticket", id)
		}
		if err := fn(r, t); err != nil {
			return err
		}
		t.UpdatedAt = ptrTime(uc.now())
		return r.Tickets.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	out := toTicketResponse(t)
	return &out, nil
}

func checkEmployee(ctx context.Context, r repository.Repos, id string) error {
	e, err := r.Employees.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.NotFound("Employee", id)
	}
	return nil
}

func toTicketResponse(t *entity.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:                  t.ID,
		UserID:              t.UserID,
		Description:         t.Description,
		AISuggestedSolution: t.AISuggestedSolution,
		FinalSolution:       t.FinalSolution,
		Status:              t.Status,
		AssignedEmployeeID:  t.AssignedEmployeeID,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}
