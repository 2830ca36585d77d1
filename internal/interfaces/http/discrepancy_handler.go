package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
)

// DiscrepancyHandler maneja los reportes de discrepancias y las vistas de piso.
type DiscrepancyHandler struct {
	uc *usecase.DiscrepancyUseCase
}

// NewDiscrepancyHandler construye el handler.
func NewDiscrepancyHandler(uc *usecase.DiscrepancyUseCase) *DiscrepancyHandler {
	return &DiscrepancyHandler{uc: uc}
}

// Report godoc
// @Summary      Discrepancias de parciales, racks llenos y racks con varios pallets
// @Tags         discrepancies
// @Produce      json
// @Success      200  {object}  dto.DiscrepancyReportDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/discrepancies [get]
func (h *DiscrepancyHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Report(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Bulk godoc
// @Summary      Ubicaciones de piso sobre capacidad
// @Tags         discrepancies
// @Produce      json
// @Success      200  {array}  dto.BulkDiscrepancyDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/discrepancies/bulk [get]
func (h *DiscrepancyHandler) Bulk(c *fiber.Ctx) error {
	out, err := h.uc.Bulk(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Duplicates godoc
// @Summary      Pallets presentes en más de una ubicación
// @Tags         discrepancies
// @Produce      json
// @Success      200  {object}  dto.DuplicatesDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/discrepancies/duplicates [get]
func (h *DiscrepancyHandler) Duplicates(c *fiber.Ctx) error {
	out, err := h.uc.Duplicates(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// BulkLocations godoc
// @Summary      Ocupación de las ubicaciones de piso
// @Tags         bulk
// @Produce      json
// @Param        with_space  query  bool  false  "Solo ubicaciones con huecos libres"
// @Success      200  {array}  dto.BulkLocationDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/bulk/locations [get]
func (h *DiscrepancyHandler) BulkLocations(c *fiber.Ctx) error {
	all, withSpace, err := h.uc.BulkViews(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	if c.QueryBool("with_space") {
		return c.JSON(withSpace)
	}
	return c.JSON(all)
}

// BulkEmpty godoc
// @Summary      Ubicaciones de piso con al menos un hueco libre
// @Tags         bulk
// @Produce      json
// @Success      200  {array}  dto.BulkLocationDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/bulk/empty [get]
func (h *DiscrepancyHandler) BulkEmpty(c *fiber.Ctx) error {
	_, withSpace, err := h.uc.BulkViews(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(withSpace)
}
