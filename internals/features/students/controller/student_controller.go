// file: internals/features/students/controller/student_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedesk_backend/internals/constants"
	feeModel "feedesk_backend/internals/features/fees/model"
	feeService "feedesk_backend/internals/features/fees/service"
	dto "feedesk_backend/internals/features/students/dto"
	studentModel "feedesk_backend/internals/features/students/model"
	studentService "feedesk_backend/internals/features/students/service"
	helper "feedesk_backend/internals/helpers"
	osshelper "feedesk_backend/internals/helpers/oss"
)

type StudentHandler struct {
	DB    *gorm.DB
	Blob  osshelper.BlobService
	Store studentService.Store
}

/* =========================
   List (GET /api/a/students)
========================= */

func (h *StudentHandler) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}

	q := h.DB.WithContext(c.Context()).
		Model(&studentModel.Student{}).
		Where("student_user_id = ?", ownerID)

	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("student_name ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(c.Query("class")); v != "" {
		q = q.Where("student_class = ?", v)
	}

	var students []studentModel.Student
	if err := q.Order("student_created_at DESC").Find(&students).Error; err != nil {
		log.Printf("[ERROR] list students: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
	}

	// Latest-fee status filter works over the owner's full fee set.
	if status := strings.TrimSpace(c.Query("status")); status == "paid" || status == "unpaid" {
		var fees []feeModel.FeeRecord
		if err := h.DB.WithContext(c.Context()).
			Where("fee_record_user_id = ?", ownerID).
			Order("fee_record_created_at ASC").
			Find(&fees).Error; err != nil {
			log.Printf("[ERROR] list fee records for filter: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
		}
		students = feeService.FilterByLatestStatus(
			students, fees, feeModel.FeeStatus(status), feeService.LatestModeFromEnv(),
		)
	}

	return helper.JsonOK(c, "ok", dto.ToStudentResponses(students))
}

/* =========================
   Detail (GET /api/a/students/:id)
========================= */

func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var student studentModel.Student
	if err := h.findOwned(c, ownerID, id, &student); err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(student))
}

/* =========================
   Create (POST /api/a/students)
========================= */

func (h *StudentHandler) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !constants.IsValidClass(in.StudentClass) {
		return helper.JsonError(c, fiber.StatusBadRequest, "unknown class")
	}
	admission, err := time.Parse("2006-01-02", in.StudentAdmissionDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid admission date")
	}

	student := studentModel.Student{
		StudentUserID:           ownerID,
		StudentName:             strings.TrimSpace(in.StudentName),
		StudentClass:            in.StudentClass,
		StudentFatherName:       strings.TrimSpace(in.StudentFatherName),
		StudentMobile:           helper.DigitsOnly(in.StudentMobile),
		StudentAdmissionDate:    admission,
		StudentMonthlyFeeAmount: in.StudentMonthlyFeeAmount,
	}

	// Optional profile image. Upload first, then write the row; if the row
	// write fails the uploaded object is deleted so nothing is orphaned.
	uploadedURL := ""
	if fh, ferr := osshelper.GetImageFile(c); ferr != nil {
		return ferr
	} else if fh != nil {
		if h.Blob == nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "image uploads are not configured")
		}
		url, uerr := h.Blob.UploadStudentImage(c.Context(), fh)
		if uerr != nil {
			return uerr
		}
		uploadedURL = url
		student.StudentProfileImageURL = &uploadedURL
	}

	if err := h.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
		if uploadedURL != "" {
			if derr := h.Blob.DeleteByPublicURL(c.Context(), uploadedURL); derr != nil {
				log.Printf("[ERROR] compensating delete failed for %s: %v", uploadedURL, derr)
			}
		}
		log.Printf("[ERROR] create student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save student")
	}

	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(student))
}

/* =========================
   Update (PUT /api/a/students/:id)
========================= */

func (h *StudentHandler) Update(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var student studentModel.Student
	if err := h.findOwned(c, ownerID, id, &student); err != nil {
		return err
	}

	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if in.StudentName != nil {
		student.StudentName = strings.TrimSpace(*in.StudentName)
	}
	if in.StudentClass != nil {
		if !constants.IsValidClass(*in.StudentClass) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown class")
		}
		student.StudentClass = *in.StudentClass
	}
	if in.StudentFatherName != nil {
		student.StudentFatherName = strings.TrimSpace(*in.StudentFatherName)
	}
	if in.StudentMobile != nil {
		student.StudentMobile = helper.DigitsOnly(*in.StudentMobile)
	}
	if in.StudentAdmissionDate != nil {
		admission, perr := time.Parse("2006-01-02", *in.StudentAdmissionDate)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid admission date")
		}
		student.StudentAdmissionDate = admission
	}
	if in.StudentMonthlyFeeAmount != nil {
		// affects future generation only; existing records keep their snapshot
		student.StudentMonthlyFeeAmount = *in.StudentMonthlyFeeAmount
	}

	oldImageURL := ""
	if student.StudentProfileImageURL != nil {
		oldImageURL = *student.StudentProfileImageURL
	}
	uploadedURL := ""
	if fh, ferr := osshelper.GetImageFile(c); ferr != nil {
		return ferr
	} else if fh != nil {
		if h.Blob == nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "image uploads are not configured")
		}
		url, uerr := h.Blob.UploadStudentImage(c.Context(), fh)
		if uerr != nil {
			return uerr
		}
		uploadedURL = url
		student.StudentProfileImageURL = &uploadedURL
	}

	if err := h.DB.WithContext(c.Context()).Save(&student).Error; err != nil {
		if uploadedURL != "" {
			if derr := h.Blob.DeleteByPublicURL(c.Context(), uploadedURL); derr != nil {
				log.Printf("[ERROR] compensating delete failed for %s: %v", uploadedURL, derr)
			}
		}
		log.Printf("[ERROR] update student %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save student")
	}

	// replaced image: drop the old object after the row is safely written
	if uploadedURL != "" && oldImageURL != "" && oldImageURL != uploadedURL {
		if derr := h.Blob.DeleteByPublicURL(c.Context(), oldImageURL); derr != nil {
			log.Printf("[ERROR] delete old image %s: %v", oldImageURL, derr)
		}
	}

	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(student))
}

/* =========================
   Delete (DELETE /api/a/students/:id)
========================= */

// Delete removes the student and, in the same transaction, every fee record
// that belongs to them. Referential integrity is the application's job here.
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	if err := h.Store.DeleteWithFees(c.Context(), ownerID, id); err != nil {
		if errors.Is(err, studentService.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		log.Printf("[ERROR] delete student %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}

/* =========================
   internal
========================= */

func (h *StudentHandler) findOwned(c *fiber.Ctx, ownerID, id uuid.UUID, out *studentModel.Student) error {
	err := h.DB.WithContext(c.Context()).
		Where("student_id = ? AND student_user_id = ?", id, ownerID).
		First(out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		log.Printf("[ERROR] fetch student %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch data")
	}
	return nil
}
