package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
)

// AuthHandler registro, login y administración de usuarios y roles.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Description  Alta pública; el usuario queda con el rol Customer.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, firstName, lastName"
// @Success      201   {object}  dto.Response[dto.UserResponse]
// @Failure      400   {object}  dto.Response[map[string][]string]
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out, "User registered successfully")
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Response[dto.LoginResponse]
// @Failure      400   {object}  dto.Response[map[string][]string]
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, out, "Login successful")
}

// GetRoles godoc
// @Summary      Listar roles
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response[[]string]
// @Failure      403  {object}  dto.Response[any]
// @Router       /api/auth/roles [get]
func (h *AuthHandler) GetRoles(c *fiber.Ctx) error {
	out, err := h.uc.GetRoles(c.UserContext())
	if err != nil {
		return err
	}
	return list(c, out, "roles")
}

// CreateRole godoc
// @Summary      Crear rol
// @Description  Idempotente: data es false si el rol ya existía.
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RoleRequest  true  "Nombre del rol"
// @Success      200   {object}  dto.Response[bool]
// @Failure      403   {object}  dto.Response[any]
// @Router       /api/auth/roles [post]
func (h *AuthHandler) CreateRole(c *fiber.Ctx) error {
	var in dto.RoleRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	createdRole, err := h.uc.CreateRole(c.UserContext(), in)
	if err != nil {
		return err
	}
	if !createdRole {
		return ok(c, false, "Role '"+in.Name+"' already exists")
	}
	return ok(c, true, "Role '"+in.Name+"' created successfully")
}

// DeleteRole godoc
// @Summary      Borrar rol
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nombre del rol"
// @Success      200   {object}  dto.Response[bool]
// @Router       /api/auth/roles/{name} [delete]
func (h *AuthHandler) DeleteRole(c *fiber.Ctx) error {
	name := c.Params("name")
	removed, err := h.uc.DeleteRole(c.UserContext(), name)
	if err != nil {
		return err
	}
	if !removed {
		return ok(c, false, "Role '"+name+"' not found")
	}
	return ok(c, true, "Role '"+name+"' deleted successfully")
}

// GetUsers godoc
// @Summary      Listar usuarios con sus roles
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response[[]dto.UserResponse]
// @Router       /api/auth/users [get]
func (h *AuthHandler) GetUsers(c *fiber.Ctx) error {
	out, err := h.uc.GetUsers(c.UserContext())
	if err != nil {
		return err
	}
	return list(c, out, "users")
}

// UpdateUser godoc
// @Summary      Actualizar usuario
// @Description  Si role viene informado reemplaza los roles actuales.
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Datos del usuario"
// @Success      200   {object}  dto.Response[dto.UserResponse]
// @Failure      404   {object}  dto.Response[any]
// @Router       /api/auth/users/{id} [put]
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateUser(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return ok(c, out, "User updated successfully")
}

// DeleteUser godoc
// @Summary      Borrar usuario
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response[bool]
// @Failure      404  {object}  dto.Response[any]
// @Router       /api/auth/users/{id} [delete]
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return deleted(c, "User")
}

// AdminResetPassword godoc
// @Summary      Restablecer contraseña de un usuario
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminResetPasswordRequest  true  "email y nueva contraseña"
// @Success      200   {object}  dto.Response[bool]
// @Failure      404   {object}  dto.Response[any]
// @Router       /api/auth/admin-reset-password [post]
func (h *AuthHandler) AdminResetPassword(c *fiber.Ctx) error {
	var in dto.AdminResetPasswordRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	done, err := h.uc.AdminResetPassword(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, done, "Password reset successfully")
}
