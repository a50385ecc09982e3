package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nomascartera/proyectos-api/internal/application/dto"
	"github.com/nomascartera/proyectos-api/internal/domain"
)

// respondError traduce los errores sentinela del dominio a códigos HTTP.
// Los duplicados de registro responden 400 (no 409) y el acceso a recursos
// ajenos responde el mismo 404 que un recurso inexistente.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "datos de entrada inválidos"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "el email o la identificación tributaria ya están registrados"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EN_USO", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrEmpresaInactiva):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMPRESA_NO_DISPONIBLE", Message: "empresa no encontrada o inactiva"})
	case errors.Is(err, domain.ErrUsuarioInactivo):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "USUARIO_INACTIVO", Message: "usuario inactivo"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_AUTORIZADO", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PROHIBIDO", Message: "operación no permitida para este actor"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICTO", Message: "conflicto con el estado actual"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNO", Message: "error interno"})
}
