package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// TicketHandler tickets de soporte: CRUD, asignación y cambio de estado.
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// List godoc
// @Summary      Listar tickets
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response[[]dto.TicketResponse]
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return list(c, out, "tickets")
}

// ListByCustomer godoc
// @Summary      Tickets de un cliente
// @Description  Tickets cuyo usuario dueño tiene el id indicado.
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        customerId  path  string  true  "ID del usuario cliente"
// @Success      200  {object}  dto.Response[[]dto.TicketResponse]
// @Router       /api/tickets/by-customer/{customerId} [get]
func (h *TicketHandler) ListByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(c.UserContext(), c.Params("customerId"))
	if err != nil {
		return err
	}
	return list(c, out, "tickets")
}

// GetByID godoc
// @Summary      Obtener ticket por ID
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ticket"
// @Success      200  {object}  dto.Response[dto.TicketResponse]
// @Failure      404  {object}  dto.Response[any]
// @Router       /api/tickets/{id} [get]
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, out, "Ticket retrieved successfully")
}

// Create godoc
// @Summary      Abrir ticket
// @Description  El dueño es el usuario del token. Si el servicio de IA sugiere una
// @Description  solución el ticket queda ResolvedByAI; si falla queda Open.
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "Descripción del problema"
// @Success      201   {object}  dto.Response[dto.TicketResponse]
// @Failure      400   {object}  dto.Response[map[string][]string]
// @Router       /api/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return created(c, out, "Ticket created successfully")
}

// Update godoc
// @Summary      Actualizar ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del ticket"
// @Param        body  body  dto.UpdateTicketRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.Response[dto.TicketResponse]
// @Failure      404   {object}  dto.Response[any]
// @Router       /api/tickets/{id} [put]
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTicketRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return ok(c, out, "Ticket updated successfully")
}

// Delete godoc
// @Summary      Borrar ticket
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ticket"
// @Success      200  {object}  dto.Response[bool]
// @Router       /api/tickets/{id} [delete]
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return deleted(c, "Ticket")
}

// Assign godoc
// @Summary      Asignar ticket a un empleado
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del ticket"
// @Param        body  body  dto.AssignTicketRequest  true  "Empleado"
// @Success      200   {object}  dto.Response[dto.TicketResponse]
// @Failure      404   {object}  dto.Response[any]
// @Router       /api/tickets/{id}/assign [put]
func (h *TicketHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignTicketRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.AssignToEmployee(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return ok(c, out, "Ticket assigned successfully")
}

// AssignRandom godoc
// @Summary      Asignar ticket a un empleado de soporte al azar
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ticket"
// @Success      200  {object}  dto.Response[dto.TicketResponse]
// @Failure      404  {object}  dto.Response[any]
// @Failure      409  {object}  dto.Response[any]
// @Router       /api/tickets/{id}/assign-random-employee [post]
func (h *TicketHandler) AssignRandom(c *fiber.Ctx) error {
	out, err := h.uc.AssignRandomEmployee(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, out, "Ticket assigned successfully")
}

// ChangeStatus godoc
// @Summary      Cambiar estado del ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID del ticket"
// @Param        body  body  dto.ChangeTicketStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.Response[dto.TicketResponse]
// @Router       /api/tickets/{id}/status [patch]
func (h *TicketHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeTicketStatusRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return ok(c, out, "Ticket status updated successfully")
}
