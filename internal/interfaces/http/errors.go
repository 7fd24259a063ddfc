package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arriendo-api/internal/application/dto"
	"github.com/jhoicas/arriendo-api/internal/domain"
	"github.com/jhoicas/arriendo-api/pkg/logger"
)

// domainError mapea un error de dominio a su respuesta HTTP. Los handlers la
// usan como rama final después de sus casos propios. Un error que no calza
// con ningún sentinel es inesperado: se loguea completo para el operador y
// el cliente recibe un mensaje genérico, sin detalle de infraestructura.
func domainError(c *fiber.Ctx, log *logger.Logger, err error) error {
	if ve, ok := domain.AsValidationError(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "hay campos con errores",
			Errors:  ve.Fields,
		})
	}
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrRoomNotAvailable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROOM_NOT_AVAILABLE", Message: "la sala no está disponible"})
	case errors.Is(err, domain.ErrRoomOccupied):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROOM_OCCUPIED", Message: "la sala está ocupada por un tenant"})
	case errors.Is(err, domain.ErrActiveApplications):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROOM_HAS_APPLICATIONS", Message: "la sala tiene solicitudes activas"})
	case errors.Is(err, domain.ErrNotPending):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_PENDING", Message: "la solicitud ya fue revisada"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una solicitud pendiente para esta sala"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error inesperado atendiendo la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

// invalidBody respuesta estándar cuando el body no parsea.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
