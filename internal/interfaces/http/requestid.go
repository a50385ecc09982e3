package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID header de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID key de c.Locals con el id de la petición.
const LocalRequestID = "request_id"

// RequestID propaga el X-Request-ID entrante o genera uno nuevo, lo deja en
// Locals para el logging y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalRequestID, rid)
		c.Set(HeaderRequestID, rid)
		return c.Next()
	}
}
