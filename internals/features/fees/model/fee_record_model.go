// file: internals/features/fees/model/fee_record_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — fee record status
============================== */

type FeeStatus string

const (
	FeeStatusUnpaid FeeStatus = "unpaid"
	FeeStatusPaid   FeeStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodQR     PaymentMethod = "qr"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodManual PaymentMethod = "manual"
)

func ValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentMethodQR, PaymentMethodCash, PaymentMethodManual:
		return true
	}
	return false
}

/* ==============================================
   MODEL
============================================== */

type FeeRecord struct {
	// PK
	FeeRecordID uuid.UUID `gorm:"column:fee_record_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_record_id"`

	// FK → students(student_id); unique with month+year so generation cannot
	// race itself into duplicates. The index is partial: a soft-deleted record
	// releases its (student, month, year) slot so the month can be recreated.
	FeeRecordStudentID uuid.UUID `gorm:"column:fee_record_student_id;type:uuid;not null;index;uniqueIndex:uniq_fee_records_student_month_year,priority:1,where:fee_record_deleted_at IS NULL" json:"fee_record_student_id"`

	// Owner (admin account the record belongs to)
	FeeRecordUserID uuid.UUID `gorm:"column:fee_record_user_id;type:uuid;not null;index" json:"fee_record_user_id"`

	// Period
	FeeRecordMonth int16 `gorm:"column:fee_record_month;type:smallint;not null;check:fee_record_month BETWEEN 1 AND 12;uniqueIndex:uniq_fee_records_student_month_year,priority:2" json:"fee_record_month"`
	FeeRecordYear  int16 `gorm:"column:fee_record_year;type:smallint;not null;uniqueIndex:uniq_fee_records_student_month_year,priority:3" json:"fee_record_year"`

	// Amount: snapshot of the student's monthly fee at generation time, whole rupees
	FeeRecordAmount int `gorm:"column:fee_record_amount;type:int;not null;check:fee_record_amount>0" json:"fee_record_amount"`

	// Status
	FeeRecordStatus        FeeStatus      `gorm:"column:fee_record_status;type:varchar(10);not null;default:'unpaid';index" json:"fee_record_status"`
	FeeRecordPaymentMethod *PaymentMethod `gorm:"column:fee_record_payment_method;type:varchar(10)" json:"fee_record_payment_method,omitempty"`
	FeeRecordTransactionID *string        `gorm:"column:fee_record_transaction_id;type:varchar(120)" json:"fee_record_transaction_id,omitempty"`
	FeeRecordPaidAt        *time.Time     `gorm:"column:fee_record_paid_at" json:"fee_record_paid_at,omitempty"`

	// Audit
	FeeRecordCreatedAt time.Time      `gorm:"column:fee_record_created_at;type:timestamptz;not null;default:now();index" json:"fee_record_created_at"`
	FeeRecordUpdatedAt time.Time      `gorm:"column:fee_record_updated_at;type:timestamptz;not null;default:now()" json:"fee_record_updated_at"`
	FeeRecordDeletedAt gorm.DeletedAt `gorm:"column:fee_record_deleted_at;type:timestamptz;index" json:"-"`
}

func (FeeRecord) TableName() string { return "fee_records" }

/* ======================================
   HOOKS — timestamps
====================================== */

func (m *FeeRecord) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeeRecordCreatedAt.IsZero() {
		m.FeeRecordCreatedAt = now
	}
	m.FeeRecordUpdatedAt = now
	return nil
}

func (m *FeeRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeRecordUpdatedAt = time.Now()
	return nil
}

/* ======================================
   STATUS MACHINE
====================================== */

// Transition errors. Controllers map these to HTTP statuses.
var (
	ErrFeeAlreadyPaid        = errors.New("fee is already paid")
	ErrTransactionIDRequired = errors.New("transaction id is required for qr payments")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
)

// MarkPaid transitions unpaid → paid. QR payments must carry a non-blank
// transaction id; cash and manual must not. On any validation failure the
// record is left untouched.
func (m *FeeRecord) MarkPaid(method PaymentMethod, transactionID string, now time.Time) error {
	if m.FeeRecordStatus == FeeStatusPaid {
		return ErrFeeAlreadyPaid
	}
	txn := strings.TrimSpace(transactionID)

	switch method {
	case PaymentMethodQR:
		if txn == "" {
			return ErrTransactionIDRequired
		}
	case PaymentMethodCash, PaymentMethodManual:
		txn = ""
	default:
		return ErrInvalidPaymentMethod
	}

	m.FeeRecordStatus = FeeStatusPaid
	pm := method
	m.FeeRecordPaymentMethod = &pm
	if txn != "" {
		m.FeeRecordTransactionID = &txn
	} else {
		m.FeeRecordTransactionID = nil
	}
	t := now
	m.FeeRecordPaidAt = &t
	return nil
}

// Reopen reverts paid → unpaid. This is the correction escape hatch used by
// the ad-hoc fee editor only; the generation flow never calls it.
func (m *FeeRecord) Reopen() {
	m.FeeRecordStatus = FeeStatusUnpaid
	m.FeeRecordPaymentMethod = nil
	m.FeeRecordTransactionID = nil
	m.FeeRecordPaidAt = nil
}
