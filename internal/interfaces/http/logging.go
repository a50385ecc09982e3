package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nomascartera/proyectos-api/pkg/logger"
)

// RequestLogger emite una línea estructurada por petición atendida.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		rid, _ := c.Locals(LocalRequestID).(string)
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Str("request_id", rid).
			Msg("request")
		return err
	}
}
