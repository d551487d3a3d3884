// file: internals/features/fees/controller/fee_action_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"feedesk_backend/internals/constants"
	dto "feedesk_backend/internals/features/fees/dto"
	feeModel "feedesk_backend/internals/features/fees/model"
	feeService "feedesk_backend/internals/features/fees/service"
	studentModel "feedesk_backend/internals/features/students/model"
	helper "feedesk_backend/internals/helpers"
)

/* =========================
   Generate (POST /api/a/students/:id/fees/generate)

   Creates the unpaid records for every month of the requested year that
   does not have one yet. Safe to call twice: the second call counts zero.
========================= */

func (h *FeeRecordHandler) GenerateFees(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var in dto.GenerateFeesDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var student studentModel.Student
	err = h.DB.WithContext(c.Context()).
		Where("student_id = ? AND student_user_id = ?", studentID, ownerID).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
	}

	var existing []feeModel.FeeRecord
	err = h.DB.WithContext(c.Context()).
		Where("fee_record_student_id = ? AND fee_record_year = ?", studentID, in.Year).
		Find(&existing).Error
	if err != nil {
		log.Printf("[ERROR] load existing fee records: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
	}

	missing := feeService.MissingMonths(existing)
	if len(missing) == 0 {
		return helper.JsonOK(c, "all fees already generated for this year", dto.GenerateFeesResponse{Created: 0})
	}

	plan := feeService.PlanYear(student, ownerID, in.Year, missing)

	// OnConflict DoNothing keeps this safe against a concurrent generate: the
	// unique (student, month, year) index decides, and a lost row simply does
	// not count.
	created := 0
	err = h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for i := range plan {
			res := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "fee_record_student_id"},
					{Name: "fee_record_month"},
					{Name: "fee_record_year"},
				},
				DoNothing: true,
			}).Create(&plan[i])
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				created++
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] generate fees for student %s: %v", studentID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate fees")
	}

	if created == 0 {
		return helper.JsonOK(c, "all fees already generated for this year", dto.GenerateFeesResponse{Created: 0})
	}
	return helper.JsonCreated(c, "fees generated", dto.GenerateFeesResponse{Created: created})
}

/* =========================
   Mark paid (POST /api/a/fees/:id/pay)
========================= */

func (h *FeeRecordHandler) MarkPaid(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid fee record id")
	}

	var in dto.FeeRecordMarkPaidDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var rec feeModel.FeeRecord
	if err := h.findOwned(c, ownerID, id, &rec); err != nil {
		return err
	}

	if err := rec.MarkPaid(feeModel.PaymentMethod(in.PaymentMethod), in.TransactionID, time.Now()); err != nil {
		return markPaidError(c, err)
	}
	if err := h.DB.WithContext(c.Context()).Save(&rec).Error; err != nil {
		log.Printf("[ERROR] mark fee record %s paid: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save fee record")
	}
	return helper.JsonUpdated(c, "fee marked paid", dto.ToFeeRecordResponse(rec))
}

/* =========================
   Summary (GET /api/a/students/:id/fees/summary?year=)
========================= */

func (h *FeeRecordHandler) Summary(c *fiber.Ctx) error {
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
	if err := q.Find(&records).Error; err != nil {
		log.Printf("[ERROR] summary fee records: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
	}
	return helper.JsonOK(c, "ok", feeService.Summarize(records))
}

/* =========================
   Dashboard totals (GET /api/a/dashboard/fees?month=&year=)
========================= */

func (h *FeeRecordHandler) DashboardTotals(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "month must be between 1 and 12")
	}

	var records []feeModel.FeeRecord
	err = h.DB.WithContext(c.Context()).
		Where("fee_record_user_id = ? AND fee_record_month = ? AND fee_record_year = ?", ownerID, month, year).
		Find(&records).Error
	if err != nil {
		log.Printf("[ERROR] dashboard fee records: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
	}

	collected, pending := feeService.MonthlyTotals(records, month, year)
	return helper.JsonOK(c, "ok", fiber.Map{
		"month":      month,
		"month_name": helper.MonthName(month),
		"year":       year,
		"collected":  collected,
		"pending":    pending,
	})
}

/* =========================
   Form options (GET /api/a/meta/fee-form)

   Static option lists for the admin fee grid and student forms.
========================= */

func (h *FeeRecordHandler) FormOptions(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", fiber.Map{
		"months":  helper.MonthNames(),
		"years":   helper.YearWindow(time.Now()),
		"classes": constants.ClassOptions,
	})
}

/* =========================
   QR charge (POST /api/a/fees/:id/qr-charge)
========================= */

func (h *FeeRecordHandler) CreateQRCharge(c *fiber.Ctx) error {
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
	if rec.FeeRecordStatus == feeModel.FeeStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "fee is already paid")
	}

	var student studentModel.Student
	err = h.DB.WithContext(c.Context()).
		Where("student_id = ?", rec.FeeRecordStudentID).
		First(&student).Error
	if err != nil {
		log.Printf("[ERROR] fetch student for qr charge: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
	}

	token, err := feeService.GenerateFeeSnapToken(rec, student.StudentName)
	if err != nil {
		log.Printf("[ERROR] create snap transaction for fee %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create payment transaction")
	}
	return helper.JsonOK(c, "payment transaction created", fiber.Map{
		"snap_token": token,
		"order_id":   feeService.FeeOrderID(rec),
	})
}
