package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/identity"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository/repotest"
)

const missingID = "00000000-0000-0000-0000-0000000000ff"

func init() {
	identity.HashCost = bcrypt.MinCost
}

// requireKind verifica que err sea un *domain.Error del tipo indicado.
func requireKind(t *testing.T, err error, kind domain.Kind) *domain.Error {
	t.Helper()
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	require.Equal(t, kind, de.Kind, "error: %v", err)
	return de
}

func seedUser(t *testing.T, store *repotest.Store, email string, roles ...string) *entity.User {
	t.Helper()
	ctx := context.Background()
	svc := identity.New(store.Repos())
	_, err := svc.EnsureRoles(ctx, append([]string{entity.RoleCustomer}, entity.SeedRoles...)...)
	require.NoError(t, err)
	u := &entity.User{Email: email, FirstName: "Test", LastName: "User"}
	require.NoError(t, svc.CreateUser(ctx, u, "secreto123"))
	for _, r := range roles {
		require.NoError(t, svc.AddToRole(ctx, u, r))
	}
	return u
}

func seedCustomer(t *testing.T, store *repotest.Store) dto.CustomerResponse {
	t.Helper()
	c, err := usecase.NewCustomerUseCase(store).Create(context.Background(), dto.CustomerRequest{
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@cliente.test",
		Type:      entity.CustomerTypePerson,
	})
	require.NoError(t, err)
	return *c
}

func seedEmployee(t *testing.T, store *repotest.Store, userID string) dto.EmployeeResponse {
	t.Helper()
	e, err := usecase.NewEmployeeUseCase(store).Create(context.Background(), dto.EmployeeRequest{
		UserID:          userID,
		HireDate:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Salary:          decimal.RequireFromString("3200.50"),
		AnnualLeaveDays: 20,
	})
	require.NoError(t, err)
	return *e
}
