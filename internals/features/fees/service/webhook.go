// file: internals/features/fees/service/webhook.go
package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	feeModel "feedesk_backend/internals/features/fees/model"
)

// HandleFeePaymentWebhook is called for every gateway notification. The raw
// payload is stored as an event row first; only settlement/capture flips the
// fee to paid, stamping the gateway transaction id.
func HandleFeePaymentWebhook(db *gorm.DB, raw []byte, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	feeID, err := parseFeeOrderID(orderID)

	event := feeModel.FeePaymentEvent{
		FeePaymentEventOrderID: orderID,
		FeePaymentEventStatus:  status,
		FeePaymentEventPayload: datatypes.JSON(raw),
	}
	if err == nil {
		event.FeePaymentEventFeeRecordID = &feeID
	}
	if err := db.Create(&event).Error; err != nil {
		log.Printf("[ERROR] cannot store payment event for %s: %v", orderID, err)
	}

	if err != nil {
		return fmt.Errorf("unrecognized order id %q", orderID)
	}

	switch status {
	case "capture", "settlement":
		var fee feeModel.FeeRecord
		if err := db.Where("fee_record_id = ?", feeID).First(&fee).Error; err != nil {
			log.Println("[ERROR] fee record not found for order:", orderID)
			return fmt.Errorf("fee record for order %s not found", orderID)
		}
		if fee.FeeRecordStatus == feeModel.FeeStatusPaid {
			// duplicate notification, nothing to do
			return nil
		}

		txnID, _ := body["transaction_id"].(string)
		if strings.TrimSpace(txnID) == "" {
			txnID = orderID
		}
		if err := fee.MarkPaid(feeModel.PaymentMethodQR, txnID, time.Now()); err != nil {
			return err
		}
		if err := db.Save(&fee).Error; err != nil {
			return err
		}
		log.Printf("[INFO] fee %s settled via gateway (txn=%s)", feeID, txnID)

	case "expire", "cancel", "deny":
		// the fee simply stays unpaid
		log.Printf("[INFO] order %s ended as %s, fee left unpaid", orderID, status)

	default:
		log.Println("[INFO] unhandled transaction status:", status)
	}

	return nil
}

func parseFeeOrderID(orderID string) (uuid.UUID, error) {
	if !strings.HasPrefix(orderID, "FEE-") {
		return uuid.Nil, fmt.Errorf("not a fee order id")
	}
	return uuid.Parse(strings.TrimPrefix(orderID, "FEE-"))
}
