package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// EnumHandler catálogos públicos de enumeraciones para los selects del front.
type EnumHandler struct {
	catalog map[string][]entity.EnumOption
}

func NewEnumHandler() *EnumHandler {
	return &EnumHandler{catalog: entity.Catalog()}
}

// Get godoc
// @Summary      Opciones de una enumeración
// @Tags         enums
// @Produce      json
// @Param        slug  path  string  true  "customer-type, lead-status, lead-source, industry-type, interaction-type, sale-status, ticket-status, task-status, task-priority o task-type"
// @Success      200   {object}  dto.Response[[]entity.EnumOption]
// @Failure      404   {object}  dto.Response[any]
// @Router       /api/enums/{slug} [get]
func (h *EnumHandler) Get(c *fiber.Ctx) error {
	slug := c.Params("slug")
	opts, found := h.catalog[slug]
	if !found {
		return domain.NotFound("Enumeration", slug)
	}
	return ok(c, opts, "Options retrieved successfully")
}
