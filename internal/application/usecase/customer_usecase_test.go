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

func TestCustomer_CreateYGetByID(t *testing.T) {
	store := repotest.New()
	uc := usecase.NewCustomerUseCase(store)
	company := "ACME"
	in := dto.CustomerRequest{
		FirstName:   "Luis",
		LastName:    "Pérez",
		Email:       "luis@acme.test",
		Phone:       "+57 300",
		Address:     "Calle 1",
		Type:        entity.CustomerTypeBusiness,
		CompanyName: &company,
	}

	created, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luis", got.FirstName)
	assert.Equal(t, "Luis Pérez", got.FullName)
	assert.Equal(t, entity.CustomerTypeBusiness, got.Type)
	require.NotNil(t, got.CompanyName)
	assert.Equal(t, "ACME", *got.CompanyName)
}

func TestCustomer_CreateInvalido(t *testing.T) {
	store := repotest.New()
	_, err := usecase.NewCustomerUseCase(store).Create(context.Background(), dto.CustomerRequest{Email: "no-es-email"})

	de := requireKind(t, err, domain.KindValidation)
	assert.Contains(t, de.Fields, "FirstName")
	assert.Contains(t, de.Fields, "Email")
	assert.Contains(t, de.Fields, "Type")
	assert.Zero(t, store.Writes())
}

func TestCustomer_UpdateInexistenteNoEscribe(t *testing.T) {
	store := repotest.New()
	_, err := usecase.NewCustomerUseCase(store).Update(context.Background(), missingID, dto.CustomerRequest{
		FirstName: "X",
		Type:      entity.CustomerTypePerson,
	})

	de := requireKind(t, err, domain.KindNotFound)
	assert.Equal(t, `Entity "Customer" (`+missingID+`) was not found.`, de.Message)
	assert.Zero(t, store.Writes())
}

func TestCustomer_UpdateSobrescribeCampos(t *testing.T) {
	store := repotest.New()
	uc := usecase.NewCustomerUseCase(store)
	c := seedCustomer(t, store)

	updated, err := uc.Update(context.Background(), c.ID, dto.CustomerRequest{
		FirstName: "Ana María",
		Type:      entity.CustomerTypePerson,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.FirstName)
	assert.Empty(t, updated.LastName)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestCustomer_DeleteLuegoGetByID(t *testing.T) {
	store := repotest.New()
	uc := usecase.NewCustomerUseCase(store)
	c := seedCustomer(t, store)

	require.NoError(t, uc.Delete(context.Background(), c.ID))
	_, err := uc.GetByID(context.Background(), c.ID)
	requireKind(t, err, domain.KindNotFound)

	requireKind(t, uc.Delete(context.Background(), c.ID), domain.KindNotFound)
}

func TestCustomer_ListVacioNoEsNil(t *testing.T) {
	list, err := usecase.NewCustomerUseCase(repotest.New()).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
