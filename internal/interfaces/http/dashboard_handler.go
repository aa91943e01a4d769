package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/panol-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del tablero.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_items, below_minimum, total_stock truncado,
// recent_movements[10]). Se recalcula en cada llamada.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
