package cli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/application/identity"
	"github.com/jhoicas/crm-api/internal/cli"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository/repotest"
)

func init() {
	identity.HashCost = bcrypt.MinCost
}

func TestSeedRoles_Idempotente(t *testing.T) {
	store := repotest.New()
	ctx := context.Background()

	created, err := cli.SeedRoles(ctx, store)
	require.NoError(t, err)
	assert.ElementsMatch(t, entity.SeedRoles, created)

	created, err = cli.SeedRoles(ctx, store)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestEnsureAdmin_CreaUsuarioConRolAdmin(t *testing.T) {
	store := repotest.New()
	ctx := context.Background()

	created, err := cli.EnsureAdmin(ctx, store, "root@crm.test", "secreto123")
	require.NoError(t, err)
	assert.True(t, created)

	svc := identity.New(store.Repos())
	u, err := svc.FindByEmail(ctx, "root@crm.test")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, svc.CheckPassword(u, "secreto123"))
	roles, err := svc.GetRoles(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, []string{entity.RoleAdmin}, roles)
}

func TestEnsureAdmin_UsuarioExistenteSoloSePromueve(t *testing.T) {
	store := repotest.New()
	ctx := context.Background()
	_, err := cli.EnsureAdmin(ctx, store, "root@crm.test", "secreto123")
	require.NoError(t, err)

	created, err := cli.EnsureAdmin(ctx, store, "root@crm.test", "otra-clave-123")
	require.NoError(t, err)
	assert.False(t, created)

	svc := identity.New(store.Repos())
	u, err := svc.FindByEmail(ctx, "root@crm.test")
	require.NoError(t, err)
	assert.True(t, svc.CheckPassword(u, "secreto123"), "la contraseña existente no cambia")
}

func TestEnsureAdmin_SinCredenciales(t *testing.T) {
	_, err := cli.EnsureAdmin(context.Background(), repotest.New(), "", "")
	assert.Error(t, err)
}

func TestEnsureAdmin_PasswordCortoNoEscribe(t *testing.T) {
	store := repotest.New()
	_, err := cli.EnsureAdmin(context.Background(), store, "root@crm.test", "corta")
	require.Error(t, err)

	u, err := identity.New(store.Repos()).FindByEmail(context.Background(), "root@crm.test")
	require.NoError(t, err)
	assert.Nil(t, u)
}
