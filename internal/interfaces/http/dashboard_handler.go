package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/felipe798/gestion-facturas-api/internal/application/analytics"
)

// DashboardHandler estadísticas del Gerente y notificaciones del Contador.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats resumen financiero del dashboard.
// GET /api/dashboard/estadisticas
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetNotifications contrapartes con facturas vencidas acumuladas.
// GET /api/notificaciones
func (h *DashboardHandler) GetNotifications(c *fiber.Ctx) error {
	out, err := h.uc.GetNotifications(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
