package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc        *usecase.DashboardUseCase
	snapshots *usecase.SnapshotService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, snapshots *usecase.SnapshotService) *DashboardHandler {
	return &DashboardHandler{uc: uc, snapshots: snapshots}
}

// GetSummary godoc
// @Summary      Resumen del tablero
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(summary)
}

// GetZones godoc
// @Summary      Resumen de inventario por zona A..I
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.ZoneSummaryDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/zones/summary [get]
func (h *DashboardHandler) GetZones(c *fiber.Ctx) error {
	zones, err := h.uc.ZonesSummary(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(zones)
}

// Refresh godoc
// @Summary      Invalidar el snapshot en caché y recalcular el resumen
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	h.snapshots.Invalidate()
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(summary)
}
