package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
)

// AskHandler maneja las consultas en lenguaje natural.
type AskHandler struct {
	uc *usecase.AskUseCase
}

// NewAskHandler construye el handler.
func NewAskHandler(uc *usecase.AskUseCase) *AskHandler {
	return &AskHandler{uc: uc}
}

// Ask godoc
// @Summary      Consulta en lenguaje natural sobre el inventario
// @Tags         ask
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AskRequest  true  "Consulta, p. ej. 'bulk locations with 5 pallets or less'"
// @Success      200   {object}  dto.AskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ask [post]
func (h *AskHandler) Ask(c *fiber.Ctx) error {
	var in dto.AskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Answer(c.Context(), in.Query)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
