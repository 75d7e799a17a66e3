package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// TaskUseCase CRUD de tareas.
type TaskUseCase struct {
	base
}

func NewTaskUseCase(uow repository.UnitOfWork) *TaskUseCase {
	return &TaskUseCase{base: newBase(uow)}
}

func (uc *TaskUseCase) List(ctx context.Context) ([]dto.TaskResponse, error) {
	list, err := uc.uow.Repos().Tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toTaskResponse), nil
}

func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*dto.TaskResponse, error) {
	t, err := uc.uow.Repos().Tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound("Task", id)
	}
	out := toTaskResponse(t)
	return &out, nil
}

// Create el empleado asignado y el cliente (si viene) deben existir.
func (uc *TaskUseCase) Create(ctx context.Context, in dto.TaskRequest) (*dto.TaskResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	t := &entity.Task{ID: uuid.New().String(), Status: entity.TaskStatusTodo, CreatedAt: uc.now()}
	applyTask(t, in)
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		if err := checkTaskRefs(ctx, r, in); err != nil {
			return err
		}
		return r.Tasks.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	out := toTaskResponse(t)
	return &out, nil
}

func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.TaskRequest) (*dto.TaskResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var t *entity.Task
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		var err error
		if t, err = r.Tasks.GetByID(ctx, id); err != nil {
			return err
		}
		if t == nil {
			return domain.NotFound("Task", id)
		}
		if err := checkTaskRefs(ctx, r, in); err != nil {
			return err
		}
		applyTask(t, in)
		t.UpdatedAt = ptrTime(uc.now())
		return r.Tasks.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	out := toTaskResponse(t)
	return &out, nil
}

func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(r repository.Repos) error {
		t, err := r.Tasks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.NotFound("Task", id)
		}
		return r.Tasks.Delete(ctx, id)
	})
}

func checkTaskRefs(ctx context.Context, r repository.Repos, in dto.TaskRequest) error {
	e, err := r.Employees.GetByID(ctx, in.AssignedEmployeeID)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.NotFound("Employee", in.AssignedEmployeeID)
	}
	if in.CustomerID == nil || *in.CustomerID == "" {
		return nil
	}
	c, err := r.Customers.GetByID(ctx, *in.CustomerID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.NotFound("Customer", *in.CustomerID)
	}
	return nil
}

// applyTask un Status vacío conserva el actual.
func applyTask(t *entity.Task, in dto.TaskRequest) {
	t.AssignedEmployeeID = in.AssignedEmployeeID
	t.CustomerID = in.CustomerID
	if t.CustomerID != nil && *t.CustomerID == "" {
		t.CustomerID = nil
	}
	t.Title = in.Title
	t.Description = in.Description
	t.DueDate = in.DueDate
	t.Priority = in.Priority
	if in.Status != 0 {
		t.Status = in.Status
	}
	t.Type = in.Type
}

func toTaskResponse(t *entity.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:                 t.ID,
		AssignedEmployeeID: t.AssignedEmployeeID,
		CustomerID:         t.CustomerID,
		Title:              t.Title,
		Description:        t.Description,
		DueDate:            t.DueDate,
		Priority:           t.Priority,
		Status:             t.Status,
		Type:               t.Type,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
