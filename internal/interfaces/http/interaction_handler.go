package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// InteractionHandler maneja las peticiones HTTP de interacciones con clientes.
type InteractionHandler struct {
	uc *usecase.InteractionUseCase
}

// NewInteractionHandler construye el handler.
func NewInteractionHandler(uc *usecase.InteractionUseCase) *InteractionHandler {
	return &InteractionHandler{uc: uc}
}

// List godoc
// @Summary      Listar interacciones
// @Tags         interactions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response[[]dto.InteractionResponse]
// @Router       /api/interactions [get]
func (h *InteractionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return list(c, out, "interactions")
}

// ListByCustomer godoc
// @Summary      Interacciones de un cliente
// @Tags         interactions
// @Security     Bearer
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.Response[[]dto.InteractionResponse]
// @Router       /api/interactions/by-customer/{customerId} [get]
func (h *InteractionHandler) ListByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(c.UserContext(), c.Params("customerId"))
	if err != nil {
		return err
	}
	return list(c, out, "interactions")
}

// GetByID godoc
// @Summary      Obtener interacción por ID
// @Tags         interactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la interacción"
// @Success      200  {object}  dto.Response[dto.InteractionResponse]
// @Failure      404  {object}  dto.Response[any]
// @Router       /api/interactions/{id} [get]
func (h *InteractionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, out, "Interaction retrieved successfully")
}

// Create godoc
// @Summary      Registrar interacción
// @Tags         interactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InteractionRequest  true  "Datos de la interacción"
// @Success      201   {object}  dto.Response[dto.InteractionResponse]
// @Failure      400   {object}  dto.Response[map[string][]string]
// @Router       /api/interactions [post]
func (h *InteractionHandler) Create(c *fiber.Ctx) error {
	var in dto.InteractionRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out, "Interaction created successfully")
}

// Update godoc
// @Summary      Actualizar interacción
// @Tags         interactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la interacción"
// @Param        body  body  dto.InteractionRequest  true  "Datos de la interacción"
// @Success      200   {object}  dto.Response[dto.InteractionResponse]
// @Failure      404   {object}  dto.Response[any]
// @Router       /api/interactions/{id} [put]
func (h *InteractionHandler) Update(c *fiber.Ctx) error {
	var in dto.InteractionRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return ok(c, out, "Interaction updated successfully")
}

// Delete godoc
// @Summary      Borrar interacción
// @Tags         interactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la interacción"
// @Success      200  {object}  dto.Response[bool]
// @Failure      404  {object}  dto.Response[any]
// @Router       /api/interactions/{id} [delete]
func (h *InteractionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return deleted(c, "Interaction")
}
