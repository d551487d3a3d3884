// file: internals/features/fees/dto/fee_record_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	feeModel "feedesk_backend/internals/features/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE RECORDS — DTO
////////////////////////////////////////////////////////////////////////////////

// Create (ad-hoc single entry by the admin)
type FeeRecordCreateDTO struct {
	FeeRecordStudentID uuid.UUID `json:"fee_record_student_id" validate:"required"`
	FeeRecordMonth     int       `json:"fee_record_month" validate:"required,min=1,max=12"`
	FeeRecordYear      int       `json:"fee_record_year" validate:"required,min=2000,max=2100"`
	FeeRecordAmount    int       `json:"fee_record_amount" validate:"required,gt=0"`
}

// Update (the correction escape hatch: every field editable, including
// re-opening a paid record back to unpaid)
type FeeRecordUpdateDTO struct {
	FeeRecordMonth         *int    `json:"fee_record_month,omitempty" validate:"omitempty,min=1,max=12"`
	FeeRecordYear          *int    `json:"fee_record_year,omitempty" validate:"omitempty,min=2000,max=2100"`
	FeeRecordAmount        *int    `json:"fee_record_amount,omitempty" validate:"omitempty,gt=0"`
	FeeRecordStatus        *string `json:"fee_record_status,omitempty" validate:"omitempty,oneof=paid unpaid"`
	FeeRecordPaymentMethod *string `json:"fee_record_payment_method,omitempty" validate:"omitempty,oneof=qr cash manual"`
	FeeRecordTransactionID *string `json:"fee_record_transaction_id,omitempty"`
}

// Mark paid action
type FeeRecordMarkPaidDTO struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=qr cash manual"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// Generate action
type GenerateFeesDTO struct {
	Year int `json:"year" validate:"required,min=2000,max=2100"`
}

type GenerateFeesResponse struct {
	Created int `json:"created"`
}

// Response
type FeeRecordResponse struct {
	FeeRecordID        uuid.UUID `json:"fee_record_id"`
	FeeRecordStudentID uuid.UUID `json:"fee_record_student_id"`

	FeeRecordMonth  int `json:"fee_record_month"`
	FeeRecordYear   int `json:"fee_record_year"`
	FeeRecordAmount int `json:"fee_record_amount"`

	FeeRecordStatus        string     `json:"fee_record_status"`
	FeeRecordPaymentMethod *string    `json:"fee_record_payment_method,omitempty"`
	FeeRecordTransactionID *string    `json:"fee_record_transaction_id,omitempty"`
	FeeRecordPaidAt        *time.Time `json:"fee_record_paid_at,omitempty"`

	FeeRecordCreatedAt time.Time `json:"fee_record_created_at"`
	FeeRecordUpdatedAt time.Time `json:"fee_record_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToFeeRecordResponse(m feeModel.FeeRecord) FeeRecordResponse {
	var method *string
	if m.FeeRecordPaymentMethod != nil {
		s := string(*m.FeeRecordPaymentMethod)
		method = &s
	}
	return FeeRecordResponse{
		FeeRecordID:            m.FeeRecordID,
		FeeRecordStudentID:     m.FeeRecordStudentID,
		FeeRecordMonth:         int(m.FeeRecordMonth),
		FeeRecordYear:          int(m.FeeRecordYear),
		FeeRecordAmount:        m.FeeRecordAmount,
		FeeRecordStatus:        string(m.FeeRecordStatus),
		FeeRecordPaymentMethod: method,
		FeeRecordTransactionID: m.FeeRecordTransactionID,
		FeeRecordPaidAt:        m.FeeRecordPaidAt,
		FeeRecordCreatedAt:     m.FeeRecordCreatedAt,
		FeeRecordUpdatedAt:     m.FeeRecordUpdatedAt,
	}
}

func ToFeeRecordResponses(ms []feeModel.FeeRecord) []FeeRecordResponse {
	out := make([]FeeRecordResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeRecordResponse(m))
	}
	return out
}
