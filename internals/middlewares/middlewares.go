package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"feedesk_backend/internals/middlewares/logger"
)

// SetupMiddlewares registers the base middleware chain. CORS for the public
// lookup group is attached per-group in the route setup, not here.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
