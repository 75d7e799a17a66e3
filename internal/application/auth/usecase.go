// Package auth contiene login, registro y la administración de usuarios y roles.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/identity"
	"github.com/jhoicas/crm-api/internal/application/validation"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

// invalidLogin mismo mensaje para email desconocido y contraseña incorrecta.
const invalidLogin = "Invalid email or password"

// AuthUseCase casos de uso de autenticación y de gestión de cuentas.
type AuthUseCase struct {
	uow    repository.UnitOfWork
	jwtCfg jwt.Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(uow repository.UnitOfWork, jwtCfg jwt.Config) *AuthUseCase {
	return &AuthUseCase{uow: uow, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera el JWT y retorna token + usuario.
// Un usuario sin roles recibe BaseUser antes de emitir el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var out dto.LoginResponse
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		svc := identity.New(r)
		user, err := svc.FindByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if user == nil || user.IsDeleted() || !svc.CheckPassword(user, in.Password) {
			return domain.ValidationField("Login", invalidLogin)
		}
		roles, err := svc.GetRoles(ctx, user)
		if err != nil {
			return err
		}
		if len(roles) == 0 {
			if _, err := svc.EnsureRoles(ctx, entity.RoleBaseUser); err != nil {
				return err
			}
			if err := svc.AddToRole(ctx, user, entity.RoleBaseUser); err != nil {
				return err
			}
			roles = []string{entity.RoleBaseUser}
		}
		token, err := jwt.Generate(uc.jwtCfg, user.ID, user.Email, roles)
		if err != nil {
			return err
		}
		out = dto.LoginResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      roles[0],
			Roles:     roles,
			Token:     token,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register alta pública con rol Customer. No emite token.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var out dto.UserResponse
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		svc := identity.New(r)
		user := &entity.User{
			Email:     strings.TrimSpace(in.Email),
			FirstName: in.FirstName,
			LastName:  in.LastName,
		}
		if err := svc.CreateUser(ctx, user, in.Password); err != nil {
			return identity.AsValidation(err)
		}
		if _, err := svc.EnsureRoles(ctx, entity.RoleCustomer); err != nil {
			return err
		}
		if err := svc.AddToRole(ctx, user, entity.RoleCustomer); err != nil {
			return identity.AsValidation(err)
		}
		out = dto.NewUserResponse(user, []string{entity.RoleCustomer})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Roles ────────────────────────────────────────────────────────────────────

func (uc *AuthUseCase) GetRoles(ctx context.Context) ([]string, error) {
	return identity.New(uc.uow.Repos()).ListRoles(ctx)
}

// CreateRole devuelve false si el rol ya existía.
func (uc *AuthUseCase) CreateRole(ctx context.Context, in dto.RoleRequest) (bool, error) {
	if err := validation.Struct(in); err != nil {
		return false, err
	}
	var created bool
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		names, err := identity.New(r).EnsureRoles(ctx, strings.TrimSpace(in.Name))
		created = len(names) == 1
		return err
	})
	var ie *identity.Error
	if errors.As(err, &ie) && ie.Code == identity.CodeDuplicateRoleName {
		// otra petición lo creó entre la consulta y el insert
		return false, nil
	}
	if err != nil {
		return false, identity.AsValidation(err)
	}
	return created, nil
}

// DeleteRole devuelve false si el rol no existe.
func (uc *AuthUseCase) DeleteRole(ctx context.Context, name string) (bool, error) {
	var deleted bool
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		var err error
		deleted, err = identity.New(r).DeleteRole(ctx, name)
		return err
	})
	return deleted, err
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

func (uc *AuthUseCase) GetUsers(ctx context.Context) ([]dto.UserResponse, error) {
	repos := uc.uow.Repos()
	users, err := repos.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	svc := identity.New(repos)
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		roles, err := svc.GetRoles(ctx, u)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.NewUserResponse(u, roles))
	}
	return out, nil
}

// UpdateUser cambia email y nombres; si Role viene, reemplaza todos los roles por ese.
func (uc *AuthUseCase) UpdateUser(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var out dto.UserResponse
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		svc := identity.New(r)
		user, err := svc.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NotFound("User", id)
		}
		user.Email = strings.TrimSpace(in.Email)
		user.FirstName = in.FirstName
		user.LastName = in.LastName
		if err := svc.UpdateUser(ctx, user); err != nil {
			return identity.AsValidation(err)
		}
		roles, err := svc.GetRoles(ctx, user)
		if err != nil {
			return err
		}
		if in.Role != "" {
			if err := svc.RemoveFromRoles(ctx, user, roles); err != nil {
				return err
			}
			if err := svc.AddToRole(ctx, user, in.Role); err != nil {
				return identity.AsValidation(err)
			}
			roles = []string{in.Role}
		}
		out = dto.NewUserResponse(user, roles)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *AuthUseCase) DeleteUser(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(r repository.Repos) error {
		svc := identity.New(r)
		user, err := svc.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NotFound("User", id)
		}
		return svc.DeleteUser(ctx, user)
	})
}

// AdminResetPassword genera un token de reseteo y lo consume en el mismo paso.
func (uc *AuthUseCase) AdminResetPassword(ctx context.Context, in dto.AdminResetPasswordRequest) (bool, error) {
	if err := validation.Struct(in); err != nil {
		return false, err
	}
	err := uc.uow.Run(ctx, func(r repository.Repos) error {
		svc := identity.New(r)
		user, err := svc.FindByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NotFound("User", in.Email)
		}
		token, err := svc.GeneratePasswordResetToken(ctx, user)
		if err != nil {
			return err
		}
		return identity.AsValidation(svc.ResetPassword(ctx, user, token, in.NewPassword))
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
