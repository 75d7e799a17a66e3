package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
)

// AIHandler documentos de la base de conocimiento del asistente de soporte.
type AIHandler struct {
	uc *usecase.AIDocumentUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIDocumentUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir documento a la base de conocimiento
// @Tags         ai
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Documento"
// @Success      200   {object}  dto.Response[bool]
// @Failure      400   {object}  dto.Response[map[string][]string]
// @Router       /api/ai/documents [post]
func (h *AIHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationField("File", "A file is required.")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := h.uc.Upload(c.UserContext(), fh.Filename, f); err != nil {
		return err
	}
	return ok(c, true, "Document uploaded successfully")
}

// List godoc
// @Summary      Listar documentos de la base de conocimiento
// @Description  Devuelve tal cual la lista del servicio de IA.
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response[any]
// @Router       /api/ai/documents [get]
func (h *AIHandler) List(c *fiber.Ctx) error {
	docs, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, docs, "Documents retrieved successfully")
}

// Delete godoc
// @Summary      Borrar documento
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        fileName  path  string  true  "Nombre del archivo"
// @Success      200       {object}  dto.Response[bool]
// @Router       /api/ai/documents/{fileName} [delete]
func (h *AIHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("fileName")); err != nil {
		return err
	}
	return deleted(c, "Document")
}
