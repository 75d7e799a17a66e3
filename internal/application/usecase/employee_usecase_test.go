package usecase_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository/repotest"
)

func TestEmployee_CreateReemplazaRoles(t *testing.T) {
	store := repotest.New()
	u := seedUser(t, store, "nuevo@crm.test", entity.RoleCustomer, entity.RoleSalesPerson)

	e := seedEmployee(t, store, u.ID)
	assert.Regexp(t, regexp.MustCompile(`^EMP-[0-9A-F]{8}$`), e.EmployeeNumber)
	assert.Equal(t, 20, e.RemainingLeaveDays)
	require.NotNil(t, e.User)
	assert.Equal(t, []string{entity.RoleEmployee}, e.User.Roles)

	roles, err := store.Repos().Roles.RolesOf(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{entity.RoleEmployee}, roles)
}

func TestEmployee_CreateConservaRolesSiYaEsEmployee(t *testing.T) {
	store := repotest.New()
	u := seedUser(t, store, "emp@crm.test", entity.RoleEmployee, entity.RoleSupport)

	e := seedEmployee(t, store, u.ID)
	assert.ElementsMatch(t, []string{entity.RoleEmployee, entity.RoleSupport}, e.User.Roles)
}

func TestEmployee_UsuarioInexistenteOBorrado(t *testing.T) {
	store := repotest.New()
	uc := usecase.NewEmployeeUseCase(store)
	in := dto.EmployeeRequest{UserID: missingID, HireDate: time.Now()}

	_, err := uc.Create(context.Background(), in)
	requireKind(t, err, domain.KindNotFound)

	u := seedUser(t, store, "baja@crm.test")
	deleted := time.Now()
	u.DeletedAt = &deleted
	require.NoError(t, store.Repos().Users.Update(context.Background(), u))

	in.UserID = u.ID
	_, err = uc.Create(context.Background(), in)
	requireKind(t, err, domain.KindNotFound)
}

func TestEmployee_UnaFichaPorUsuario(t *testing.T) {
	store := repotest.New()
	u := seedUser(t, store, "emp@crm.test")
	seedEmployee(t, store, u.ID)

	_, err := usecase.NewEmployeeUseCase(store).Create(context.Background(), dto.EmployeeRequest{UserID: u.ID, HireDate: time.Now()})
	requireKind(t, err, domain.KindConflict)
}

func TestEmployee_UpdateNoCambiaNumero(t *testing.T) {
	store := repotest.New()
	u := seedUser(t, store, "emp@crm.test")
	e := seedEmployee(t, store, u.ID)
	uc := usecase.NewEmployeeUseCase(store)

	updated, err := uc.Update(context.Background(), e.ID, dto.EmployeeRequest{
		UserID:          "ignorado",
		HireDate:        e.HireDate,
		AnnualLeaveDays: 20,
		UsedLeaveDays:   5,
	})
	require.NoError(t, err)
	assert.Equal(t, e.EmployeeNumber, updated.EmployeeNumber)
	assert.Equal(t, u.ID, updated.UserID)
	assert.Equal(t, 15, updated.RemainingLeaveDays)

	require.NoError(t, uc.Delete(context.Background(), e.ID))
	_, err = uc.GetByID(context.Background(), e.ID)
	requireKind(t, err, domain.KindNotFound)
}
