package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/identity"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// EmployeeUseCase fichas laborales. Crear una ficha deja al usuario solo con el rol Employee.
type EmployeeUseCase struct {
	base
}

func NewEmployeeUseCase(uow repository.UnitOfWork) *EmployeeUseCase {
	return &EmployeeUseCase{base: newBase(uow)}
}

func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	repos := uc.uow.Repos()
	list, err := repos.Employees.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		resp, err := withUser(ctx, repos, e)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	repos := uc.uow.Repos()
	e, err := repos.Employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound("Employee", id)
	}
	out, err := withUser(ctx, repos, e)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create el usuario debe existir y no estar dado de baja. Genera EMP-XXXXXXXX y,
// si el usuario aún no es Employee, reemplaza sus roles por Employee.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.UserID) == "" {
		return nil, domain.ValidationField("UserID", "'UserID' must not be empty.")
	}
	e := &entity.Employee{
		ID:             uuid.New().String(),
		UserID:         in.UserID,
		EmployeeNumber: entity.NewEmployeeNumber(),
		CreatedAt:      uc.now(),
	}
	applyEmployee(e, in)
	var out dto.EmployeeResponse
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		svc := identity.New(r)
		u, err := svc.FindByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if u == nil || u.IsDeleted() {
			return domain.NotFound("User", in.UserID)
		}
		if err := r.Employees.Create(ctx, e); err != nil {
			return err
		}
		roles, err := svc.GetRoles(ctx, u)
		if err != nil {
			return err
		}
		if !slices.Contains(roles, entity.RoleEmployee) {
			if err := svc.RemoveFromRoles(ctx, u, roles); err != nil {
				return err
			}
			if _, err := svc.EnsureRoles(ctx, entity.RoleEmployee); err != nil {
				return err
			}
			if err := svc.AddToRole(ctx, u, entity.RoleEmployee); err != nil {
				return identity.AsValidation(err)
			}
			roles = []string{entity.RoleEmployee}
		}
		out = toEmployeeResponse(e)
		user := dto.NewUserResponse(u, roles)
		out.User = &user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update no cambia el usuario ni el número de empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var out dto.EmployeeResponse
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		e, err := r.Employees.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.NotFound("Employee", id)
		}
		applyEmployee(e, in)
		e.UpdatedAt = ptrTime(uc.now())
		if err := r.Employees.Update(ctx, e); err != nil {
			return err
		}
		out, err = withUser(ctx, r, e)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(r repository.Repos) error {
		e, err := r.Employees.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.NotFound("Employee", id)
		}
		return r.Employees.Delete(ctx, id)
	})
}

func withUser(ctx context.Context, r repository.Repos, e *entity.Employee) (dto.EmployeeResponse, error) {
	out := toEmployeeResponse(e)
	u, err := r.Users.GetByID(ctx, e.UserID)
	if err != nil || u == nil {
		return out, err
	}
	roles, err := r.Roles.RolesOf(ctx, u.ID)
	if err != nil {
		return out, err
	}
	user := dto.NewUserResponse(u, roles)
	out.User = &user
	return out, nil
}

func applyEmployee(e *entity.Employee, in dto.EmployeeRequest) {
	e.HireDate = in.HireDate
	e.Salary = in.Salary
	e.WorkEmail = in.WorkEmail
	e.WorkPhone = in.WorkPhone
	e.AnnualLeaveDays = in.AnnualLeaveDays
	e.UsedLeaveDays = in.UsedLeaveDays
	e.PerformanceScore = in.PerformanceScore
	e.EmergencyContact = in.EmergencyContact
	e.EmergencyPhone = in.EmergencyPhone
	e.BankAccount = in.BankAccount
	e.TaxNumber = in.TaxNumber
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:                 e.ID,
		UserID:             e.UserID,
		EmployeeNumber:     e.EmployeeNumber,
		HireDate:           e.HireDate,
		Salary:             e.Salary,
		WorkEmail:          e.WorkEmail,
		WorkPhone:          e.WorkPhone,
		AnnualLeaveDays:    e.AnnualLeaveDays,
		UsedLeaveDays:      e.UsedLeaveDays,
		RemainingLeaveDays: e.RemainingLeaveDays(),
		PerformanceScore:   e.PerformanceScore,
		EmergencyContact:   e.EmergencyContact,
		EmergencyPhone:     e.EmergencyPhone,
		BankAccount:        e.BankAccount,
		TaxNumber:          e.TaxNumber,
	}
}
