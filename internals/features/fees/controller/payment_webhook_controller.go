// file: internals/features/fees/controller/payment_webhook_controller.go
package controller

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeService "feedesk_backend/internals/features/fees/service"
	helper "feedesk_backend/internals/helpers"
)

type PaymentWebhookHandler struct {
	DB *gorm.DB
}

// HandleNotification receives gateway notifications on the public surface.
// Always answers 200 once the payload parses, so the gateway stops retrying;
// processing failures are logged, not surfaced.
func (h *PaymentWebhookHandler) HandleNotification(c *fiber.Ctx) error {
	raw := c.Body()

	var body map[string]interface{}
	if err := sonic.Unmarshal(raw, &body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	if err := feeService.HandleFeePaymentWebhook(h.DB, raw, body); err != nil {
		log.Printf("[ERROR] payment webhook: %v", err)
	}
	return helper.JsonOK(c, "ok", nil)
}
