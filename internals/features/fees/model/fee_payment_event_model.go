// file: internals/features/fees/model/fee_payment_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeePaymentEvent keeps every raw gateway notification we receive, whether or
// not it changed a fee record. Useful when reconciling disputed QR payments.
type FeePaymentEvent struct {
	FeePaymentEventID uuid.UUID `gorm:"column:fee_payment_event_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_payment_event_id"`

	FeePaymentEventOrderID     string     `gorm:"column:fee_payment_event_order_id;type:varchar(80);not null;index" json:"fee_payment_event_order_id"`
	FeePaymentEventFeeRecordID *uuid.UUID `gorm:"column:fee_payment_event_fee_record_id;type:uuid;index" json:"fee_payment_event_fee_record_id,omitempty"`

	FeePaymentEventStatus  string         `gorm:"column:fee_payment_event_status;type:varchar(30);not null" json:"fee_payment_event_status"`
	FeePaymentEventPayload datatypes.JSON `gorm:"column:fee_payment_event_payload;type:jsonb" json:"fee_payment_event_payload"`

	FeePaymentEventCreatedAt time.Time `gorm:"column:fee_payment_event_created_at;type:timestamptz;not null;default:now()" json:"fee_payment_event_created_at"`
}

func (FeePaymentEvent) TableName() string { return "fee_payment_events" }
