package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// LeadHandler maneja las peticiones HTTP de prospectos.
type LeadHandler struct {
	uc *usecase.LeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// List godoc
// @Summary      Listar prospectos
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response[[]dto.LeadResponse]
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return list(c, out, "leads")
}

// GetByID godoc
// @Summary      Obtener prospecto por ID
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del prospecto"
// @Success      200  {object}  dto.Response[dto.LeadResponse]
// @Failure      404  {object}  dto.Response[any]
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, out, "Lead retrieved successfully")
}

// Create godoc
// @Summary      Crear prospecto
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LeadRequest  true  "Datos del prospecto"
// @Success      201   {object}  dto.Response[dto.LeadResponse]
// @Failure      400   {object}  dto.Response[map[string][]string]
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.LeadRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out, "Lead created successfully")
}

// Update godoc
// @Summary      Actualizar prospecto
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del prospecto"
// @Param        body  body  dto.LeadRequest  true  "Datos del prospecto"
// @Success      200   {object}  dto.Response[dto.LeadResponse]
// @Failure      404   {object}  dto.Response[any]
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.LeadRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return ok(c, out, "Lead updated successfully")
}

// Delete godoc
// @Summary      Borrar prospecto
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del prospecto"
// @Success      200  {object}  dto.Response[bool]
// @Failure      404  {object}  dto.Response[any]
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return deleted(c, "Lead")
}
