package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nomascartera/proyectos-api/internal/application/auth"
	"github.com/nomascartera/proyectos-api/internal/application/dto"
	"github.com/nomascartera/proyectos-api/internal/domain"
	"github.com/nomascartera/proyectos-api/internal/domain/tenant"
	"github.com/nomascartera/proyectos-api/pkg/jwt"
)

// Locals keys usadas por los middlewares de autenticación.
const (
	LocalClaims = "jwt_claims"
	LocalActor  = "actor"
)

// AuthMiddleware valida el Bearer Token JWT y deja los claims en c.Locals.
// No consulta la base; la resolución a actor es del middleware siguiente.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_FALTANTE", Message: "header Authorization requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_FALTANTE", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "token inválido o expirado"})
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// ActorMiddleware resuelve los claims ya validados a exactamente un actor
// (empresa o usuario) contra el estado actual de la base. Un token firmado
// cuyo principal ya no existe o fue desactivado responde 401.
func ActorMiddleware(resolver *auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
		actor, err := resolver.Resolve(c.UserContext(), claims)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "no se pudo validar el token"})
			}
			return respondError(c, err)
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// GetActor devuelve el actor autenticado del contexto (tras ActorMiddleware).
func GetActor(c *fiber.Ctx) tenant.Actor {
	actor, _ := c.Locals(LocalActor).(tenant.Actor)
	return actor
}
