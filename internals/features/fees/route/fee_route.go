// file: internals/features/fees/route/fee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "feedesk_backend/internals/features/fees/controller"
)

// FeeAdminRoutes mounts the fee-record admin surface.
// Base: /api/a
func FeeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	feeRecordController := &controller.FeeRecordHandler{DB: db}

	fees := admin.Group("/fees")
	fees.Post("/", feeRecordController.Create)
	fees.Put("/:id", feeRecordController.Update)
	fees.Delete("/:id", feeRecordController.Delete)
	fees.Post("/:id/pay", feeRecordController.MarkPaid)
	fees.Post("/:id/qr-charge", feeRecordController.CreateQRCharge)

	admin.Get("/dashboard/fees", feeRecordController.DashboardTotals)
	admin.Get("/meta/fee-form", feeRecordController.FormOptions)
}

// FeePublicRoutes mounts the payment gateway callback.
// Base: /api/public
func FeePublicRoutes(public fiber.Router, db *gorm.DB) {
	webhookController := &controller.PaymentWebhookHandler{DB: db}

	public.Post("/fees/payment-webhook", webhookController.HandleNotification)
}
