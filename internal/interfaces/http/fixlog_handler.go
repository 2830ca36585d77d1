package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
)

// FixLogHandler maneja el registro y la consulta del fix log.
type FixLogHandler struct {
	uc *usecase.FixLogUseCase
}

// NewFixLogHandler construye el handler.
func NewFixLogHandler(uc *usecase.FixLogUseCase) *FixLogHandler {
	return &FixLogHandler{uc: uc}
}

// LogBatch godoc
// @Summary      Registrar un lote de resoluciones o descartes
// @Tags         fixlog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FixBatchRequest  true  "Acción y filas del lote"
// @Success      201   {object}  dto.FixBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fixlog [post]
func (h *FixLogHandler) LogBatch(c *fiber.Ctx) error {
	var in dto.FixBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.LogBatch(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Consultar el fix log, más reciente primero
// @Tags         fixlog
// @Produce      json
// @Param        type  query  string  false  "Tipo de discrepancia"
// @Param        from  query  string  false  "Fecha inicial (YYYY-MM-DD o RFC 3339)"
// @Param        to    query  string  false  "Fecha final (YYYY-MM-DD o RFC 3339)"
// @Param        q     query  string  false  "Búsqueda de texto libre"
// @Success      200   {object}  dto.FixLogDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fixlog [get]
func (h *FixLogHandler) List(c *fiber.Ctx) error {
	filter := repository.FixLogFilter{
		DiscrepancyType: c.Query("type"),
		Text:            c.Query("q"),
	}
	var err error
	if filter.From, err = parseTimeParam(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido"})
	}
	if filter.To, err = parseTimeParam(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido"})
	}

	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// parseTimeParam acepta fecha sola o RFC 3339; vacío devuelve el cero de time.Time.
func parseTimeParam(val string) (time.Time, error) {
	if val == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, val)
}
