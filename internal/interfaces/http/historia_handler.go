package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nomascartera/proyectos-api/internal/application/dto"
	"github.com/nomascartera/proyectos-api/internal/application/usecase"
)

// HistoriaHandler maneja el CRUD de historias de usuario.
type HistoriaHandler struct {
	uc *usecase.HistoriaUseCase
}

// NewHistoriaHandler construye el handler de historias.
func NewHistoriaHandler(uc *usecase.HistoriaUseCase) *HistoriaHandler {
	return &HistoriaHandler{uc: uc}
}

// Create crea una historia bajo un proyecto propio. Estado y prioridad
// ausentes toman sus valores por defecto.
func (h *HistoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHistoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProyecto lista las historias de un proyecto propio.
func (h *HistoriaHandler) ListByProyecto(c *fiber.Ctx) error {
	proyectoID, err := c.ParamsInt("proyecto_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "proyecto_id inválido"})
	}
	out, err := h.uc.ListByProyecto(c.UserContext(), GetActor(c), proyectoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve una historia propia; 404 si no existe o es ajena.
func (h *HistoriaHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update reemplaza título, descripción, estado y prioridad de una historia.
func (h *HistoriaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "id inválido"})
	}
	var in dto.UpdateHistoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una historia propia con sus tickets.
func (h *HistoriaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), GetActor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
