package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// SaleRepository persiste la venta junto con sus líneas.
// Update reemplaza todas las líneas existentes por sale.Lines.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error
}
