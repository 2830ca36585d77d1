package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
)

// BinsHandler maneja las listas de ubicaciones por categoría.
type BinsHandler struct {
	uc *usecase.BinsUseCase
}

// NewBinsHandler construye el handler.
func NewBinsHandler(uc *usecase.BinsUseCase) *BinsHandler {
	return &BinsHandler{uc: uc}
}

// List godoc
// @Summary      Listar ubicaciones por categoría
// @Tags         bins
// @Produce      json
// @Param        kind  path  string  true  "empty | empty-partial | partial | full | damaged | missing"
// @Success      200   {object}  usecase.BinListDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/bins/{kind} [get]
func (h *BinsHandler) List(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if kind == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_KIND", Message: "kind es requerido"})
	}
	out, err := h.uc.List(c.Context(), kind)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
