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

// ProductUseCase CRUD del catálogo de productos.
type ProductUseCase struct {
	base
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(uow repository.UnitOfWork) *ProductUseCase {
	return &ProductUseCase{base: newBase(uow)}
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.uow.Repos().Products.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toProductResponse), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.uow.Repos().Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("Product", id)
	}
	out := toProductResponse(p)
	return &out, nil
}

// Create crea un producto. IsActive omitido queda en true.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := checkPrice(in); err != nil {
		return nil, err
	}
	p := &entity.Product{ID: uuid.New().String(), IsActive: true, CreatedAt: uc.now()}
	applyProduct(p, in)
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		return r.Products.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Update sobrescribe nombre, descripción, precio y stock; IsActive solo si viene.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := checkPrice(in); err != nil {
		return nil, err
	}
	var p *entity.Product
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		var err error
		if p, err = r.Products.GetByID(ctx, id); err != nil {
			return err
		}
		if p == nil {
			return domain.NotFound("Product", id)
		}
		applyProduct(p, in)
		p.UpdatedAt = ptrTime(uc.now())
		return r.Products.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(r repository.Repos) error {
		p, err := r.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NotFound("Product", id)
		}
		return r.Products.Delete(ctx, id)
	})
}

func checkPrice(in dto.ProductRequest) error {
	if in.Price.IsNegative() {
		return domain.ValidationField("Price", "'Price' must be greater than or equal to '0'.")
	}
	return nil
}

func applyProduct(p *entity.Product, in dto.ProductRequest) {
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.StockQuantity = in.StockQuantity
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
