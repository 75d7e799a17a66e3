package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// NoteHandler notas adjuntas a cliente, prospecto, ticket, venta o tarea.
type NoteHandler struct {
	uc *usecase.NoteUseCase
}

func NewNoteHandler(uc *usecase.NoteUseCase) *NoteHandler {
	return &NoteHandler{uc: uc}
}

// List godoc
// @Summary      Listar notas
// @Tags         notes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response[[]dto.NoteResponse]
// @Router       /api/notes [get]
func (h *NoteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return list(c, out, "notes")
}

// ListFor devuelve el handler de GET /api/notes/<padre>/:id para un tipo de padre.
//
// @Summary      Notas de una entidad
// @Tags         notes
// @Security     Bearer
// @Produce      json
// @Param        parent  path  string  true  "customer, lead, ticket, sale o task"
// @Param        id      path  string  true  "ID de la entidad"
// @Success      200  {object}  dto.Response[[]dto.NoteResponse]
// @Failure      404  {object}  dto.Response[any]
// @Router       /api/notes/{parent}/{id} [get]
func (h *NoteHandler) ListFor(kind entity.ParentKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.ListFor(c.UserContext(), kind, c.Params("id"))
		if err != nil {
			return err
		}
		return list(c, out, "notes")
	}
}

// GetByID godoc
// @Summary      Obtener nota por ID
// @Tags         notes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.Response[dto.NoteResponse]
// @Failure      404  {object}  dto.Response[any]
// @Router       /api/notes/{id} [get]
func (h *NoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, out, "Note retrieved successfully")
}

// Create godoc
// @Summary      Crear nota
// @Description  parentType indica la entidad dueña; parentId debe existir.
// @Tags         notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNoteRequest  true  "Contenido y padre"
// @Success      201   {object}  dto.Response[dto.NoteResponse]
// @Failure      400   {object}  dto.Response[map[string][]string]
// @Failure      404   {object}  dto.Response[any]
// @Router       /api/notes [post]
func (h *NoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNoteRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return created(c, out, "Note created successfully")
}

// Update godoc
// @Summary      Cambiar el contenido de una nota
// @Tags         notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la nota"
// @Param        body  body  dto.UpdateNoteRequest  true  "Contenido"
// @Success      200   {object}  dto.Response[dto.NoteResponse]
// @Router       /api/notes/{id} [put]
func (h *NoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateNoteRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return ok(c, out, "Note updated successfully")
}

// Delete godoc
// @Summary      Borrar nota
// @Tags         notes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.Response[bool]
// @Router       /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return deleted(c, "Note")
}
