package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository/repotest"
)

func leadRequest(notes string) dto.LeadRequest {
	return dto.LeadRequest{
		ContactName: "Marta Gómez",
		Email:       "marta@prospecto.test",
		Source:      entity.LeadSourceReferral,
		Industry:    entity.IndustryRetail,
		Notes:       notes,
	}
}

func TestLead_CreateConNotasGuardaUnaNota(t *testing.T) {
	store := repotest.New()
	ctx := context.Background()

	lead, err := usecase.NewLeadUseCase(store).Create(ctx, leadRequest("  llamar el lunes  "))
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)

	notes, err := store.Repos().Notes.ListByParent(ctx, entity.LeadParent(lead.ID))
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "llamar el lunes", notes[0].Content)
	assert.Equal(t, entity.ParentLead, notes[0].Parent.Kind())
	assert.Equal(t, lead.ID, notes[0].Parent.ID())
}

func TestLead_CreateSinNotas(t *testing.T) {
	store := repotest.New()
	ctx := context.Background()

	_, err := usecase.NewLeadUseCase(store).Create(ctx, leadRequest("   "))
	require.NoError(t, err)

	all, err := store.Repos().Notes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLead_FalloEnNotaRevierteProspecto(t *testing.T) {
	store := repotest.New()
	store.FailOn = "notes.create"
	ctx := context.Background()

	_, err := usecase.NewLeadUseCase(store).Create(ctx, leadRequest("seguimiento"))
	require.Error(t, err)

	leads, err := store.Repos().Leads.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestLead_UpdateSobrescribeYConservaEstado(t *testing.T) {
	store := repotest.New()
	uc := usecase.NewLeadUseCase(store)
	ctx := context.Background()
	lead, err := uc.Create(ctx, leadRequest(""))
	require.NoError(t, err)

	in := leadRequest("ignorado")
	in.ContactName = "Marta G."
	in.IsConverted = true
	updated, err := uc.Update(ctx, lead.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Marta G.", updated.ContactName)
	assert.True(t, updated.IsConverted)
	assert.Equal(t, entity.LeadStatusNew, updated.Status)

	in.Status = entity.LeadStatusQualified
	updated, err = uc.Update(ctx, lead.ID, in)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusQualified, updated.Status)
}

func TestLead_UpdateInexistente(t *testing.T) {
	store := repotest.New()
	_, err := usecase.NewLeadUseCase(store).Update(context.Background(), missingID, leadRequest(""))
	requireKind(t, err, domain.KindNotFound)
	assert.Zero(t, store.Writes())
}
