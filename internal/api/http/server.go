package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maid-cafe-service/internal/config"
)

const defaultBodyLimit = 1 << 20

// NewApp builds the fiber application with JSON/XML error rendering as the fallback
// error handler.
func NewApp(cfg config.AppConfig) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               cfg.Name,
		BodyLimit:             defaultBodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
}
