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

// CustomerUseCase CRUD de clientes.
type CustomerUseCase struct {
	base
}

func NewCustomerUseCase(uow repository.UnitOfWork) *CustomerUseCase {
	return &CustomerUseCase{base: newBase(uow)}
}

func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.uow.Repos().Customers.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toCustomerResponse), nil
}

func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.uow.Repos().Customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("Customer", id)
	}
	out := toCustomerResponse(c)
	return &out, nil
}

func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	c := &entity.Customer{ID: uuid.New().String(), CreatedAt: uc.now()}
	applyCustomer(c, in)
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		return r.Customers.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	out := toCustomerResponse(c)
	return &out, nil
}

func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var c *entity.Customer
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		var err error
		if c, err = r.Customers.GetByID(ctx, id); err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("Customer", id)
		}
		applyCustomer(c, in)
		c.UpdatedAt = ptrTime(uc.now())
		return r.Customers.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	out := toCustomerResponse(c)
	return &out, nil
}

func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(r repository.Repos) error {
		c, err := r.Customers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("Customer", id)
		}
		return r.Customers.Delete(ctx, id)
	})
}

func applyCustomer(c *entity.Customer, in dto.CustomerRequest) {
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.Type = in.Type
	c.CompanyName = in.CompanyName
	c.TaxNumber = in.TaxNumber
	c.Sector = in.Sector
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		FullName:    c.FullName(),
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Type:        c.Type,
		CompanyName: c.CompanyName,
		TaxNumber:   c.TaxNumber,
		Sector:      c.Sector,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
