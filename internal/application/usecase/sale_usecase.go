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

// SaleUseCase ventas con sus líneas de producto. Los totales de cabecera llegan
// calculados desde el cliente; solo el total de cada línea se calcula aquí.
type SaleUseCase struct {
	base
}

func NewSaleUseCase(uow repository.UnitOfWork) *SaleUseCase {
	return &SaleUseCase{base: newBase(uow)}
}

func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	repos := uc.uow.Repos()
	list, err := repos.Sales.List(ctx)
	if err != nil {
		return nil, err
	}
	names, err := productNames(ctx, repos, list...)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s, names))
	}
	return out, nil
}

func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	repos := uc.uow.Repos()
	s, err := repos.Sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound("Sale", id)
	}
	names, err := productNames(ctx, repos, s)
	if err != nil {
		return nil, err
	}
	out := toSaleResponse(s, names)
	return &out, nil
}

// Create userID es el usuario del token; se usa como vendedor si la entrada no trae uno.
func (uc *SaleUseCase) Create(ctx context.Context, userID string, in dto.SaleRequest) (*dto.SaleResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := uc.now()
	s := &entity.Sale{
		ID:            uuid.New().String(),
		SaleDate:      now,
		SalesPersonID: userID,
		Status:        entity.SaleStatusProposal,
		InvoiceNumber: entity.DefaultInvoiceNumber(now),
		CreatedAt:     now,
	}
	var out dto.SaleResponse
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		names, err := uc.apply(ctx, r, s, in)
		if err != nil {
			return err
		}
		if err := r.Sales.Create(ctx, s); err != nil {
			return err
		}
		out = toSaleResponse(s, names)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza las líneas existentes por las de la entrada.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.SaleRequest) (*dto.SaleResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var out dto.SaleResponse
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		s, err := r.Sales.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.NotFound("Sale", id)
		}
		names, err := uc.apply(ctx, r, s, in)
		if err != nil {
			return err
		}
		s.UpdatedAt = ptrTime(uc.now())
		if err := r.Sales.Update(ctx, s); err != nil {
			return err
		}
		out = toSaleResponse(s, names)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(r repository.Repos) error {
		s, err := r.Sales.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.NotFound("Sale", id)
		}
		return r.Sales.Delete(ctx, id)
	})
}

// apply copia la entrada sobre s y reconstruye las líneas. Devuelve los nombres
// de los productos encontrados; las líneas con producto inexistente se descartan.
func (uc *SaleUseCase) apply(ctx context.Context, r repository.Repos, s *entity.Sale, in dto.SaleRequest) (map[string]string, error) {
	c, err := r.Customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("Customer", in.CustomerID)
	}
	s.CustomerID = in.CustomerID
	if in.SaleDate != nil {
		s.SaleDate = in.SaleDate.UTC()
	}
	if in.SalesPersonID != "" {
		s.SalesPersonID = in.SalesPersonID
	}
	if in.Status != 0 {
		s.Status = in.Status
	}
	if in.InvoiceNumber != "" {
		s.InvoiceNumber = in.InvoiceNumber
	}
	s.TotalAmount = in.TotalAmount
	s.Discount = in.Discount
	s.Tax = in.Tax
	s.FinalAmount = in.FinalAmount

	names := make(map[string]string, len(in.Products))
	s.Lines = make([]entity.SaleLine, 0, len(in.Products))
	for _, line := range in.Products {
		p, err := r.Products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		names[p.ID] = p.Name
		s.Lines = append(s.Lines, entity.NewSaleLine(uuid.New().String(), s.ID, p.ID, line.Quantity, line.UnitPrice))
	}
	return names, nil
}

// productNames nombre de cada producto referenciado por las líneas de las ventas.
func productNames(ctx context.Context, r repository.Repos, sales ...*entity.Sale) (map[string]string, error) {
	names := make(map[string]string)
	for _, s := range sales {
		for _, l := range s.Lines {
			if _, ok := names[l.ProductID]; ok {
				continue
			}
			p, err := r.Products.GetByID(ctx, l.ProductID)
			if err != nil {
				return nil, err
			}
			if p != nil {
				names[l.ProductID] = p.Name
			}
		}
	}
	return names, nil
}

func toSaleResponse(s *entity.Sale, names map[string]string) dto.SaleResponse {
	lines := make([]dto.SaleLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.SaleLineResponse{
			ProductID:   l.ProductID,
			ProductName: names[l.ProductID],
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalPrice:  l.TotalPrice,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		SaleDate:      s.SaleDate,
		CustomerID:    s.CustomerID,
		SalesPersonID: s.SalesPersonID,
		TotalAmount:   s.TotalAmount,
		Discount:      s.Discount,
		Tax:           s.Tax,
		FinalAmount:   s.FinalAmount,
		Status:        s.Status,
		InvoiceNumber: s.InvoiceNumber,
		SaleProducts:  lines,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
