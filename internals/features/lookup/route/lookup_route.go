// file: internals/features/lookup/route/lookup_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feedesk_backend/internals/features/lookup/controller"
	lookupService "feedesk_backend/internals/features/lookup/service"
	middlewares "feedesk_backend/internals/middlewares"
)

// LookupPublicRoutes mounts the guardian fee-status lookup.
// Base: /api/public
func LookupPublicRoutes(public fiber.Router, db *gorm.DB) {
	lookupController := &controller.LookupHandler{
		Store: &lookupService.GormLookupStore{DB: db},
	}

	public.Post("/check-fee-status", middlewares.LookupRateLimiter(), lookupController.Lookup)
}
