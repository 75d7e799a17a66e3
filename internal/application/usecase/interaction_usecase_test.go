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

func TestInteraction_CreateLlevaNombreDelCliente(t *testing.T) {
	store := repotest.New()
	c := seedCustomer(t, store)
	uc := usecase.NewInteractionUseCase(store)
	ctx := context.Background()

	i, err := uc.Create(ctx, dto.InteractionRequest{CustomerID: c.ID, Type: entity.InteractionTypeCall, Content: "llamada inicial"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Ruiz", i.CustomerFullName)
	assert.False(t, i.InteractionDate.IsZero())

	list, err := uc.ListByCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana Ruiz", list[0].CustomerFullName)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ana Ruiz", all[0].CustomerFullName)
}

func TestInteraction_ClienteInexistente(t *testing.T) {
	store := repotest.New()
	_, err := usecase.NewInteractionUseCase(store).Create(context.Background(), dto.InteractionRequest{
		CustomerID: missingID,
		Type:       entity.InteractionTypeEmail,
		Content:    "x",
	})
	requireKind(t, err, domain.KindNotFound)
	assert.Zero(t, store.Writes())
}

func TestInteraction_ListByCustomerSinRegistros(t *testing.T) {
	list, err := usecase.NewInteractionUseCase(repotest.New()).ListByCustomer(context.Background(), missingID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
