package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain"
)

// errorJSON traduce errores de dominio a respuestas HTTP. Los errores de lectura
// de las hojas de origen son 502 porque el problema está aguas arriba, no aquí.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSourceFetch):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SOURCE_FETCH", Message: err.Error()})
	case errors.Is(err, domain.ErrSheetFormat):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SHEET_FORMAT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownBinKind):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_KIND", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyQuery):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_QUERY", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
