package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/crm-api/internal/application/ports"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func TestGenerateSaleInvoice_DevuelvePDF(t *testing.T) {
	g := NewMarotoPDFGenerator(language.English)
	sale := &entity.Sale{
		InvoiceNumber: "INV-20261017120000000",
		SaleDate:      time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
		Status:        entity.SaleStatusAccepted,
		TotalAmount:   decimal.RequireFromString("1500"),
		Discount:      decimal.RequireFromString("100"),
		Tax:           decimal.RequireFromString("266"),
		FinalAmount:   decimal.RequireFromString("1666"),
	}
	inv := ports.SaleInvoice{
		Sale:     sale,
		Customer: &entity.Customer{FirstName: "Ana", LastName: "Ruiz", Type: entity.CustomerTypePerson},
		Lines: []ports.SaleInvoiceLine{{
			ProductName: "Licencia",
			Quantity:    3,
			UnitPrice:   decimal.RequireFromString("500"),
			TotalPrice:  decimal.RequireFromString("1500"),
		}},
	}

	out, err := g.GenerateSaleInvoice(context.Background(), inv)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSaleInvoice_SinCliente(t *testing.T) {
	_, err := NewMarotoPDFGenerator(language.English).GenerateSaleInvoice(context.Background(), ports.SaleInvoice{Sale: &entity.Sale{}})
	assert.Error(t, err)
}

func TestMoney_SeparadorDeMiles(t *testing.T) {
	g := NewMarotoPDFGenerator(language.English)
	assert.Equal(t, "1,234,567.50", g.money(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-100.00", g.money(decimal.RequireFromString("-100")))
}
