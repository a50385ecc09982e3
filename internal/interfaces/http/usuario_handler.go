package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nomascartera/proyectos-api/internal/application/auth"
	"github.com/nomascartera/proyectos-api/internal/application/dto"
)

// UsuarioHandler maneja el alta y login de usuarios de empresa.
type UsuarioHandler struct {
	auth *auth.UseCase
}

// NewUsuarioHandler construye el handler de usuarios.
func NewUsuarioHandler(authUC *auth.UseCase) *UsuarioHandler {
	return &UsuarioHandler{auth: authUC}
}

// Create registra un usuario bajo una empresa activa y devuelve el usuario
// con su token. Empresa inexistente o inactiva responde 404; email en uso 400.
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	out, err := h.auth.RegistrarUsuario(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login autentica un usuario. Distingue email desconocido (404), usuario
// inactivo (403) y contraseña incorrecta (401).
func (h *UsuarioHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "email y password son requeridos"})
	}
	out, err := h.auth.LoginUsuario(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
