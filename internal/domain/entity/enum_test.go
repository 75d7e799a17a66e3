package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func TestParse_PorNombreYOrdinal(t *testing.T) {
	s, err := entity.ParseLeadSource("coldcall")
	require.NoError(t, err)
	assert.Equal(t, entity.LeadSourceColdCall, s)

	p, err := entity.ParseTaskPriority("4")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskPriorityCritical, p)
}

func TestParse_ValorDesconocido(t *testing.T) {
	_, err := entity.ParseTicketStatus("Pending")
	assert.Error(t, err)
	_, err = entity.ParseSaleStatus("9")
	assert.Error(t, err)
}

func TestEnum_JSONIdaYVuelta(t *testing.T) {
	type payload struct {
		Status entity.TicketStatus `json:"status"`
	}
	out, err := json.Marshal(payload{Status: entity.TicketStatusResolvedByAI})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ResolvedByAI"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"status":3}`), &in))
	assert.Equal(t, entity.TicketStatusAssignedToEmployee, in.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"Whatever"}`), &in))
}

func TestCatalog_OrdinalesDesdeUno(t *testing.T) {
	cat := entity.Catalog()
	require.Len(t, cat, 10)
	assert.Equal(t, []entity.EnumOption{{Value: 1, Name: "Person"}, {Value: 2, Name: "Business"}}, cat["customer-type"])
	assert.Equal(t, "ColdCall", cat["lead-source"][4].Name)
}

func TestParentRef_UnSoloPadre(t *testing.T) {
	ref, err := entity.NewParentRef(entity.ParentLead, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ParentLead, ref.Kind())
	assert.Equal(t, "lead-1", ref.ID())
	assert.Equal(t, "Lead(lead-1)", ref.String())

	_, err = entity.NewParentRef(entity.ParentKind(9), "x")
	assert.Error(t, err)
	_, err = entity.NewParentRef(entity.ParentSale, "")
	assert.Error(t, err)
	assert.True(t, entity.ParentRef{}.IsZero())
}

func TestNewSaleLine_TotalEsCantidadPorPrecio(t *testing.T) {
	line := entity.NewSaleLine("l1", "s1", "p1", 3, decimal.RequireFromString("12.50"))
	assert.True(t, decimal.RequireFromString("37.50").Equal(line.TotalPrice))
}

func TestDefaultInvoiceNumber_Formato(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 89_000_000, time.FixedZone("X", 3600))
	assert.Equal(t, "INV-20260304040607089", entity.DefaultInvoiceNumber(ts))
}

func TestNewEmployeeNumber_Formato(t *testing.T) {
	n := entity.NewEmployeeNumber()
	assert.Regexp(t, `^EMP-[0-9A-F]{8}$`, n)
}

func TestParentKinds_SlugsDeRuta(t *testing.T) {
	var slugs []string
	for _, k := range entity.ParentKinds() {
		slugs = append(slugs, k.Slug())
	}
	assert.Equal(t, []string{"customer", "lead", "ticket", "sale", "task"}, slugs)
}
