// file: internals/features/fees/controller/fee_record_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "feedesk_backend/internals/features/fees/dto"
	feeModel "feedesk_backend/internals/features/fees/model"
	studentModel "feedesk_backend/internals/features/students/model"
	helper "feedesk_backend/internals/helpers"
)

type FeeRecordHandler struct {
	DB *gorm.DB
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint"))
}

// markPaidError maps the status-machine errors onto HTTP statuses.
func markPaidError(c *fiber.Ctx, err error) error {
	if errors.Is(err, feeModel.ErrFeeAlreadyPaid) {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
}

/* =========================
   List per student (GET /api/a/students/:id/fees)
========================= */

func (h *FeeRecordHandler) ListByStudent(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	q := h.DB.WithContext(c.Context()).
		Where("fee_record_student_id = ? AND fee_record_user_id = ?", studentID, ownerID)
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("fee_record_year = ?", year)
	}

	var records []feeModel.FeeRecord
	if err := q.Order("fee_record_year DESC, fee_record_month ASC").Find(&records).Error; err != nil {
		log.Printf("[ERROR] list fee records: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
	}
	return helper.JsonOK(c, "ok", dto.ToFeeRecordResponses(records))
}

/* =========================
   Ad-hoc create (POST /api/a/fees)
========================= */

func (h *FeeRecordHandler) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.FeeRecordCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	// the student must exist and belong to this owner
	var student studentModel.Student
	err = h.DB.WithContext(c.Context()).
		Where("student_id = ? AND student_user_id = ?", in.FeeRecordStudentID, ownerID).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
	}

	rec := feeModel.FeeRecord{
		FeeRecordStudentID: in.FeeRecordStudentID,
		FeeRecordUserID:    ownerID,
		FeeRecordMonth:     int16(in.FeeRecordMonth),
		FeeRecordYear:      int16(in.FeeRecordYear),
		FeeRecordAmount:    in.FeeRecordAmount,
		FeeRecordStatus:    feeModel.FeeStatusUnpaid,
	}
	if err := h.DB.WithContext(c.Context()).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "a fee record already exists for that month and year")
		}
		log.Printf("[ERROR] create fee record: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save fee record")
	}
	return helper.JsonCreated(c, "fee record created", dto.ToFeeRecordResponse(rec))
}

/* =========================
   Full edit (PUT /api/a/fees/:id)

   The correction escape hatch: every field is editable here, including
   re-opening a paid record back to unpaid.
========================= */

func (h *FeeRecordHandler) Update(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid fee record id")
	}

	var rec feeModel.FeeRecord
	if err := h.findOwned(c, ownerID, id, &rec); err != nil {
		return err
	}

	var in dto.FeeRecordUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if in.FeeRecordMonth != nil {
		rec.FeeRecordMonth = int16(*in.FeeRecordMonth)
	}
	if in.FeeRecordYear != nil {
		rec.FeeRecordYear = int16(*in.FeeRecordYear)
	}
	if in.FeeRecordAmount != nil {
		rec.FeeRecordAmount = *in.FeeRecordAmount
	}

	if in.FeeRecordStatus != nil {
		switch feeModel.FeeStatus(*in.FeeRecordStatus) {
		case feeModel.FeeStatusUnpaid:
			rec.Reopen()
		case feeModel.FeeStatusPaid:
			if rec.FeeRecordStatus != feeModel.FeeStatusPaid {
				method := feeModel.PaymentMethodManual
				if in.FeeRecordPaymentMethod != nil {
					method = feeModel.PaymentMethod(*in.FeeRecordPaymentMethod)
				}
				txn := ""
				if in.FeeRecordTransactionID != nil {
					txn = *in.FeeRecordTransactionID
				}
				if err := rec.MarkPaid(method, txn, time.Now()); err != nil {
					return markPaidError(c, err)
				}
			}
		}
	}

	if err := h.DB.WithContext(c.Context()).Save(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "a fee record already exists for that month and year")
		}
		log.Printf("[ERROR] update fee record %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save fee record")
	}
	return helper.JsonUpdated(c, "fee record updated", dto.ToFeeRecordResponse(rec))
}

/* =========================
   Delete (DELETE /api/a/fees/:id)
========================= */

func (h *FeeRecordHandler) Delete(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid fee record id")
	}

	var rec feeModel.FeeRecord
	if err := h.findOwned(c, ownerID, id, &rec); err != nil {
		return err
	}
	if err := h.DB.WithContext(c.Context()).Delete(&rec).Error; err != nil {
		log.Printf("[ERROR] delete fee record %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete fee record")
	}
	return helper.JsonDeleted(c, "fee record deleted", fiber.Map{"fee_record_id": id})
}

/* =========================
   internal
========================= */

func (h *FeeRecordHandler) findOwned(c *fiber.Ctx, ownerID, id uuid.UUID, out *feeModel.FeeRecord) error {
	err := h.DB.WithContext(c.Context()).
		Where("fee_record_id = ? AND fee_record_user_id = ?", id, ownerID).
		First(out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee record not found")
		}
		log.Printf("[ERROR] fetch fee record %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
	}
	return nil
}
