package http

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

// Locals keys con los datos del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRoles  = "roles"
)

// AuthMiddleware valida el Bearer Token JWT y deja user_id, email y roles en c.Locals.
func AuthMiddleware(cfg jwt.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return domain.Unauthorized()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.Unauthorized()
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return domain.Unauthorized()
		}
		claims, err := jwt.Parse(cfg, tokenString)
		if err != nil {
			return domain.Unauthorized()
		}
		c.Locals(LocalUserID, claims.UserID())
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRoles, claims.Roles)
		return c.Next()
	}
}

// RequireRole deja pasar si el token trae al menos uno de los roles.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 401 si no hay usuario autenticado.
//   - 403 si ninguno de sus roles está permitido.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return domain.Unauthorized()
		}
		for _, role := range GetRoles(c) {
			if slices.Contains(allowed, role) {
				return c.Next()
			}
		}
		return domain.Forbidden("")
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// GetRoles roles del token; nil si no pasó por AuthMiddleware.
func GetRoles(c *fiber.Ctx) []string {
	roles, _ := c.Locals(LocalRoles).([]string)
	return roles
}
