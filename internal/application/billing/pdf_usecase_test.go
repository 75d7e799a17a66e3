package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/billing"
	"github.com/jhoicas/crm-api/internal/application/ports"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository/repotest"
)

type captureGenerator struct {
	got ports.SaleInvoice
	err error
}

func (g *captureGenerator) GenerateSaleInvoice(_ context.Context, inv ports.SaleInvoice) ([]byte, error) {
	g.got = inv
	return []byte("%PDF-fake"), g.err
}

func seedSale(t *testing.T, store *repotest.Store) *entity.Sale {
	t.Helper()
	ctx := context.Background()
	r := store.Repos()
	now := time.Now().UTC()
	require.NoError(t, r.Customers.Create(ctx, &entity.Customer{ID: "c-1", FirstName: "Ana", LastName: "Ruiz", Type: entity.CustomerTypePerson, CreatedAt: now}))
	require.NoError(t, r.Products.Create(ctx, &entity.Product{ID: "p-1", Name: "Router", Price: decimal.NewFromInt(10), IsActive: true, CreatedAt: now}))
	s := &entity.Sale{
		ID:            "s-1",
		SaleDate:      now,
		CustomerID:    "c-1",
		SalesPersonID: "sin-usuario",
		Status:        entity.SaleStatusCompleted,
		InvoiceNumber: "INV-1",
		FinalAmount:   decimal.NewFromInt(20),
		CreatedAt:     now,
	}
	s.Lines = []entity.SaleLine{
		entity.NewSaleLine("l-1", s.ID, "p-1", 2, decimal.NewFromInt(10)),
		entity.NewSaleLine("l-2", s.ID, "p-borrado", 1, decimal.NewFromInt(5)),
	}
	require.NoError(t, r.Sales.Create(ctx, s))
	return s
}

func TestDownloadInvoicePDF_ArmaDatosDeLaVenta(t *testing.T) {
	store := repotest.New()
	seedSale(t, store)
	gen := &captureGenerator{}

	pdf, name, err := billing.NewPDFUseCase(store, gen).DownloadInvoicePDF(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Equal(t, "factura_INV-1.pdf", name)

	require.NotNil(t, gen.got.Customer)
	assert.Equal(t, "Ana Ruiz", gen.got.Customer.FullName())
	assert.Nil(t, gen.got.SalesPerson)
	require.Len(t, gen.got.Lines, 2)
	assert.Equal(t, "Router", gen.got.Lines[0].ProductName)
	assert.True(t, decimal.NewFromInt(20).Equal(gen.got.Lines[0].TotalPrice))
	assert.Equal(t, "Producto p-borrado", gen.got.Lines[1].ProductName)
}

func TestDownloadInvoicePDF_VentaInexistente(t *testing.T) {
	_, _, err := billing.NewPDFUseCase(repotest.New(), &captureGenerator{}).DownloadInvoicePDF(context.Background(), "nada")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestDownloadInvoicePDF_ErrorDelGenerador(t *testing.T) {
	store := repotest.New()
	seedSale(t, store)
	gen := &captureGenerator{err: errors.New("fuente no encontrada")}

	_, _, err := billing.NewPDFUseCase(store, gen).DownloadInvoicePDF(context.Background(), "s-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf: generación fallida")
}
