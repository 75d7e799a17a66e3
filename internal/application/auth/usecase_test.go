package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/identity"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/domain/repository/repotest"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

var jwtCfg = jwt.Config{Secret: "test-secret", Issuer: "crm-api", Audience: "crm-app", Expiration: time.Hour}

func init() {
	identity.HashCost = bcrypt.MinCost
}

func newAuth(t *testing.T) (*auth.AuthUseCase, *repotest.Store) {
	t.Helper()
	store := repotest.New()
	_, err := identity.New(store.Repos()).EnsureRoles(context.Background(), entity.SeedRoles...)
	require.NoError(t, err)
	return auth.NewAuthUseCase(store, jwtCfg), store
}

func register(t *testing.T, uc *auth.AuthUseCase, email string) *dto.UserResponse {
	t.Helper()
	u, err := uc.Register(context.Background(), dto.RegisterRequest{Email: email, Password: "secreto123", FirstName: "Ana", LastName: "Ruiz"})
	require.NoError(t, err)
	return u
}

func requireValidation(t *testing.T, err error, field, msg string) {
	t.Helper()
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	require.Equal(t, domain.KindValidation, de.Kind)
	require.Contains(t, de.Fields, field)
	if msg != "" {
		assert.Equal(t, []string{msg}, de.Fields[field])
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_AsignaRolCustomer(t *testing.T) {
	uc, _ := newAuth(t)
	u := register(t, uc, "ana@crm.test")
	assert.Equal(t, []string{entity.RoleCustomer}, u.Roles)
	assert.NotEmpty(t, u.ID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuth(t)
	register(t, uc, "ana@crm.test")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "ana@crm.test", Password: "otroSecreto", FirstName: "Otra"})
	requireValidation(t, err, "Email", "Email 'ana@crm.test' is already taken.")
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc, store := newAuth(t)
	before := store.Writes()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "ana@crm.test", Password: "corto", FirstName: "Ana"})
	requireValidation(t, err, "Password", "")
	assert.Equal(t, before, store.Writes())
}

func TestLogin_DevuelveTokenConRoles(t *testing.T) {
	uc, _ := newAuth(t)
	u := register(t, uc, "ana@crm.test")

	got, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ANA@crm.test", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, entity.RoleCustomer, got.Role)

	claims, err := jwt.Parse(jwtCfg, got.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID())
	assert.True(t, claims.HasRole(entity.RoleCustomer))
}

func TestLogin_ErroresIdenticos(t *testing.T) {
	uc, _ := newAuth(t)
	register(t, uc, "ana@crm.test")

	_, wrongPassword := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@crm.test", Password: "incorrecta"})
	_, unknownEmail := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@crm.test", Password: "secreto123"})

	requireValidation(t, wrongPassword, "Login", "Invalid email or password")
	requireValidation(t, unknownEmail, "Login", "Invalid email or password")
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_SinRolesRecibeBaseUser(t *testing.T) {
	uc, store := newAuth(t)
	u := &entity.User{Email: "sinrol@crm.test", FirstName: "Sin"}
	require.NoError(t, identity.New(store.Repos()).CreateUser(context.Background(), u, "secreto123"))

	got, err := uc.Login(context.Background(), dto.LoginRequest{Email: u.Email, Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBaseUser, got.Role)
	assert.Equal(t, []string{entity.RoleBaseUser}, got.Roles)
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateRole_Idempotente(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	created, err := uc.CreateRole(ctx, dto.RoleRequest{Name: "Auditor"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.CreateRole(ctx, dto.RoleRequest{Name: "Auditor"})
	require.NoError(t, err)
	assert.False(t, created)

	roles, err := uc.GetRoles(ctx)
	require.NoError(t, err)
	n := 0
	for _, r := range roles {
		if r == "Auditor" {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

// staleRoles responde que ningún rol existe, como lo vería una petición concurrente
// que consultó antes de que la otra hiciera commit.
type staleRoles struct {
	repository.RoleRepository
}

func (staleRoles) GetByName(context.Context, string) (*entity.Role, error) { return nil, nil }

type staleUoW struct {
	*repotest.Store
}

func (u staleUoW) Run(ctx context.Context, fn func(r repository.Repos) error) error {
	return u.Store.Run(ctx, func(r repository.Repos) error {
		r.Roles = staleRoles{r.Roles}
		return fn(r)
	})
}

func TestCreateRole_CarreraDevuelveFalse(t *testing.T) {
	store := repotest.New()
	_, err := identity.New(store.Repos()).EnsureRoles(context.Background(), "Auditor")
	require.NoError(t, err)

	created, err := auth.NewAuthUseCase(staleUoW{store}, jwtCfg).CreateRole(context.Background(), dto.RoleRequest{Name: "Auditor"})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestDeleteRole(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	ok, err := uc.DeleteRole(ctx, entity.RoleManager)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.DeleteRole(ctx, entity.RoleManager)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateUser_ReemplazaRol(t *testing.T) {
	uc, _ := newAuth(t)
	u := register(t, uc, "ana@crm.test")

	got, err := uc.UpdateUser(context.Background(), u.ID, dto.UpdateUserRequest{
		Email:     "ana.ruiz@crm.test",
		FirstName: "Ana María",
		Role:      entity.RoleSupport,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana.ruiz@crm.test", got.Email)
	assert.Equal(t, []string{entity.RoleSupport}, got.Roles)
	assert.NotNil(t, got.UpdatedAt)

	users, err := uc.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, []string{entity.RoleSupport}, users[0].Roles)
}

func TestUpdateUser_RolInexistente(t *testing.T) {
	uc, _ := newAuth(t)
	u := register(t, uc, "ana@crm.test")

	_, err := uc.UpdateUser(context.Background(), u.ID, dto.UpdateUserRequest{Email: u.Email, FirstName: "Ana", Role: "Fantasma"})
	requireValidation(t, err, "Role", "")

	users, err := uc.GetUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{entity.RoleCustomer}, users[0].Roles)
}

func TestDeleteUser(t *testing.T) {
	uc, _ := newAuth(t)
	u := register(t, uc, "ana@crm.test")

	require.NoError(t, uc.DeleteUser(context.Background(), u.ID))
	err := uc.DeleteUser(context.Background(), u.ID)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestAdminResetPassword(t *testing.T) {
	uc, _ := newAuth(t)
	register(t, uc, "ana@crm.test")
	ctx := context.Background()

	ok, err := uc.AdminResetPassword(ctx, dto.AdminResetPasswordRequest{Email: "ana@crm.test", NewPassword: "nuevaClave1"})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@crm.test", Password: "nuevaClave1"})
	require.NoError(t, err)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@crm.test", Password: "secreto123"})
	require.Error(t, err)

	_, err = uc.AdminResetPassword(ctx, dto.AdminResetPasswordRequest{Email: "nadie@crm.test", NewPassword: "nuevaClave1"})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
