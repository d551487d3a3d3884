// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"feedesk_backend/internals/configs"
	adminRoute "feedesk_backend/internals/features/admins/route"
	feeRoute "feedesk_backend/internals/features/fees/route"
	lookupRoute "feedesk_backend/internals/features/lookup/route"
	studentRoute "feedesk_backend/internals/features/students/route"
	osshelper "feedesk_backend/internals/helpers/oss"
	middlewares "feedesk_backend/internals/middlewares"
	authMiddleware "feedesk_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, blob osshelper.BlobService) {
	BaseRoutes(app, db)

	// public auth
	adminRoute.AuthRoutes(app, db)

	// ==========================
	// ADMIN (JWT required)
	// Base: /api/a
	// ==========================
	admin := app.Group("/api/a",
		middlewares.CorsMiddleware(),
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	studentRoute.StudentAdminRoutes(admin, db, blob)
	feeRoute.FeeAdminRoutes(admin, db)

	// ==========================
	// PUBLIC (no account needed)
	// Base: /api/public
	// ==========================
	public := app.Group("/api/public", middlewares.PublicCorsMiddleware())
	lookupRoute.LookupPublicRoutes(public, db)
	feeRoute.FeePublicRoutes(public, db)
}
