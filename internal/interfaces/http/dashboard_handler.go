package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/minegocio-api/internal/application/analytics"
	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
)

// DashboardHandler expone las métricas del negocio y los insights de IA.
type DashboardHandler struct {
	dashboard *analytics.DashboardUseCase
	insights  *usecase.InsightUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *analytics.DashboardUseCase, insights *usecase.InsightUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, insights: insights}
}

// Summary devuelve las métricas actuales del negocio.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	m, err := h.dashboard.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(m)
}

// Insights genera un consejo financiero con IA. Nunca falla: ante
// cualquier error devuelve el insight de respaldo.
func (h *DashboardHandler) Insights(c *fiber.Ctx) error {
	return c.JSON(h.insights.Generate(c.Context()))
}
