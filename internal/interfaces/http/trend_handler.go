package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
)

// TrendHandler expone el histórico de KPIs.
type TrendHandler struct {
	uc        *usecase.TrendUseCase
	dashboard *usecase.DashboardUseCase
}

// NewTrendHandler construye el handler.
func NewTrendHandler(uc *usecase.TrendUseCase, dashboard *usecase.DashboardUseCase) *TrendHandler {
	return &TrendHandler{uc: uc, dashboard: dashboard}
}

// History godoc
// @Summary      Histórico de KPIs en orden cronológico
// @Tags         trends
// @Produce      json
// @Success      200  {object}  dto.TrendHistoryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/trends [get]
func (h *TrendHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Snapshot godoc
// @Summary      Registrar un punto de tendencia ahora (disparo manual)
// @Tags         trends
// @Produce      json
// @Success      201  {object}  map[string]bool
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/trends/snapshot [post]
func (h *TrendHandler) Snapshot(c *fiber.Ctx) error {
	if err := h.dashboard.RecordSnapshot(c.Context()); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"recorded": true})
}
