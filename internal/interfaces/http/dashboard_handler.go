package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/analytics"
)

// DashboardHandler tarjetas de resumen de la pantalla principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Prospectos por estado, tickets abiertos, tareas que vencen hoy, ventas del
// @Description  mes en curso e interacciones de los últimos 7 días. Las fechas se calculan
// @Description  en el servidor (UTC).
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response[dto.DashboardSummary]
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, summary, "Dashboard summary retrieved successfully")
}
