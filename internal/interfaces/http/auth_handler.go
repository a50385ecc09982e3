package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nomascartera/proyectos-api/internal/application/auth"
	"github.com/nomascartera/proyectos-api/internal/application/dto"
	"github.com/nomascartera/proyectos-api/internal/application/usecase"
)

// AuthHandler maneja registro, login y gestión de la empresa propia.
type AuthHandler struct {
	auth     *auth.UseCase
	empresas *usecase.EmpresaUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(authUC *auth.UseCase, empresasUC *usecase.EmpresaUseCase) *AuthHandler {
	return &AuthHandler{auth: authUC, empresas: empresasUC}
}

// Registro registra una empresa nueva. Los duplicados responden 400.
func (h *AuthHandler) Registro(c *fiber.Ctx) error {
	var in dto.RegistroEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	out, err := h.auth.RegistrarEmpresa(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login autentica una empresa y devuelve su token de acceso.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.EmailContacto == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "email_contacto y password son requeridos"})
	}
	out, err := h.auth.LoginEmpresa(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListadoEmpresas devuelve el directorio completo de empresas. Público y sin
// alcance de tenant.
func (h *AuthHandler) ListadoEmpresas(c *fiber.Ctx) error {
	out, err := h.empresas.Listado(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Resumen devuelve solo id y nombre de cada empresa.
func (h *AuthHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.empresas.Resumen(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ActualizarEmpresa actualización parcial de la empresa autenticada.
func (h *AuthHandler) ActualizarEmpresa(c *fiber.Ctx) error {
	var in dto.UpdateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	out, err := h.empresas.ActualizarPropia(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EliminarEmpresa borra la empresa autenticada; las claves foráneas en
// cascada arrastran usuarios, proyectos, historias y tickets.
func (h *AuthHandler) EliminarEmpresa(c *fiber.Ctx) error {
	if err := h.empresas.EliminarPropia(c.UserContext(), GetActor(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
