// file: internals/features/admins/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feedesk_backend/internals/features/admins/controller"
	middlewares "feedesk_backend/internals/middlewares"
)

// AuthRoutes mounts the admin login endpoint.
// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := &controller.AuthHandler{DB: db}

	auth := app.Group("/api/auth", middlewares.CorsMiddleware())
	auth.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
}
