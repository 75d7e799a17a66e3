// Package identity gestiona credenciales y roles: hash bcrypt, asignación de
// roles y tokens de restablecimiento de contraseña.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

const (
	MinPasswordLength = 8
	ResetTokenTTL     = time.Hour
)

// HashCost costo bcrypt; los tests lo bajan a bcrypt.MinCost.
var HashCost = bcrypt.DefaultCost

// Service opera sobre un juego de repositorios: los del pool para lecturas o
// los de una transacción cuando la operación forma parte de una unidad de trabajo.
type Service struct {
	users repository.UserRepository
	roles repository.RoleRepository
	now   func() time.Time
}

// New construye el servicio sobre r.
func New(r repository.Repos) *Service {
	return &Service{users: r.Users, roles: r.Roles, now: time.Now}
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.users.GetByEmail(ctx, strings.TrimSpace(email))
}

func (s *Service) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}

// CreateUser valida email y contraseña, hashea con bcrypt y persiste.
func (s *Service) CreateUser(ctx context.Context, u *entity.User, password string) error {
	u.Email = strings.TrimSpace(u.Email)
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return &Error{Code: CodeInvalidEmail, Field: "Email", Description: fmt.Sprintf("Email '%s' is invalid.", u.Email)}
	}
	existing, err := s.users.GetByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return duplicateEmail(u.Email)
	}
	hash, err := s.hash(password)
	if err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now().UTC()
	}
	u.PasswordHash = hash
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return duplicateEmail(u.Email)
		}
		return err
	}
	return nil
}

func duplicateEmail(email string) *Error {
	return &Error{Code: CodeDuplicateEmail, Field: "Email", Description: fmt.Sprintf("Email '%s' is already taken.", email)}
}

func (s *Service) hash(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", &Error{
			Code:        CodePasswordTooShort,
			Field:       "Password",
			Description: fmt.Sprintf("Passwords must be at least %d characters.", MinPasswordLength),
		}
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// CheckPassword compara en tiempo constante (bcrypt).
func (s *Service) CheckPassword(u *entity.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (s *Service) GetRoles(ctx context.Context, u *entity.User) ([]string, error) {
	roles, err := s.roles.RolesOf(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []string{}
	}
	return roles, nil
}

// AddToRole el rol debe existir.
func (s *Service) AddToRole(ctx context.Context, u *entity.User, roleName string) error {
	role, err := s.roles.GetByName(ctx, roleName)
	if err != nil {
		return err
	}
	if role == nil {
		return &Error{Code: CodeRoleNotFound, Field: "Role", Description: fmt.Sprintf("Role '%s' does not exist.", roleName)}
	}
	return s.roles.AddUserToRole(ctx, u.ID, role.ID)
}

func (s *Service) RemoveFromRoles(ctx context.Context, u *entity.User, roleNames []string) error {
	if len(roleNames) == 0 {
		return nil
	}
	return s.roles.RemoveUserFromRoles(ctx, u.ID, roleNames)
}

// UpdateUser persiste cambios de perfil; un email ya usado por otro usuario falla.
func (s *Service) UpdateUser(ctx context.Context, u *entity.User) error {
	other, err := s.users.GetByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if other != nil && other.ID != u.ID {
		return duplicateEmail(u.Email)
	}
	now := s.now().UTC()
	u.UpdatedAt = &now
	return s.users.Update(ctx, u)
}

func (s *Service) DeleteUser(ctx context.Context, u *entity.User) error {
	return s.users.Delete(ctx, u.ID)
}

// GeneratePasswordResetToken guarda un token de un solo uso con vencimiento.
func (s *Service) GeneratePasswordResetToken(ctx context.Context, u *entity.User) (string, error) {
	token := uuid.New().String()
	exp := s.now().UTC().Add(ResetTokenTTL)
	u.ResetToken = &token
	u.ResetTokenExpiresAt = &exp
	if err := s.users.Update(ctx, u); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consume el token y cambia la contraseña.
func (s *Service) ResetPassword(ctx context.Context, u *entity.User, token, newPassword string) error {
	now := s.now().UTC()
	if u.ResetToken == nil || *u.ResetToken != token || u.ResetTokenExpiresAt == nil || now.After(*u.ResetTokenExpiresAt) {
		return &Error{Code: CodeInvalidToken, Field: "Token", Description: "Invalid token."}
	}
	hash, err := s.hash(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.ResetToken = nil
	u.ResetTokenExpiresAt = nil
	u.UpdatedAt = &now
	return s.users.Update(ctx, u)
}

func (s *Service) RoleExists(ctx context.Context, name string) (bool, error) {
	role, err := s.roles.GetByName(ctx, name)
	if err != nil {
		return false, err
	}
	return role != nil, nil
}

func (s *Service) CreateRole(ctx context.Context, name string) error {
	err := s.roles.Create(ctx, &entity.Role{ID: uuid.New().String(), Name: name})
	if errors.Is(err, domain.ErrConflict) {
		return &Error{Code: CodeDuplicateRoleName, Field: "Name", Description: fmt.Sprintf("Role name '%s' is already taken.", name)}
	}
	return err
}

// DeleteRole devuelve false si el rol no existe.
func (s *Service) DeleteRole(ctx context.Context, name string) (bool, error) {
	role, err := s.roles.GetByName(ctx, name)
	if err != nil || role == nil {
		return false, err
	}
	if err := s.roles.Delete(ctx, role.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) ListRoles(ctx context.Context) ([]string, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *Service) UsersInRole(ctx context.Context, name string) ([]*entity.User, error) {
	return s.roles.UsersInRole(ctx, name)
}

// EnsureRoles crea los roles que falten y devuelve los creados.
func (s *Service) EnsureRoles(ctx context.Context, names ...string) ([]string, error) {
	var created []string
	for _, name := range names {
		ok, err := s.RoleExists(ctx, name)
		if err != nil {
			return created, err
		}
		if ok {
			continue
		}
		if err := s.CreateRole(ctx, name); err != nil {
			return created, err
		}
		created = append(created, name)
	}
	return created, nil
}
