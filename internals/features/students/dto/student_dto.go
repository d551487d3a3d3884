// file: internals/features/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	studentModel "feedesk_backend/internals/features/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

// Create. On multipart requests the profile image arrives as a file field and
// these come from form values.
type StudentCreateDTO struct {
	StudentName             string `json:"student_name" form:"student_name" validate:"required,min=2,max=120"`
	StudentClass            string `json:"student_class" form:"student_class" validate:"required"`
	StudentFatherName       string `json:"student_father_name" form:"student_father_name" validate:"required,min=2,max=120"`
	StudentMobile           string `json:"student_mobile" form:"student_mobile" validate:"required,numeric,min=10,max=15"`
	StudentAdmissionDate    string `json:"student_admission_date" form:"student_admission_date" validate:"required,datetime=2006-01-02"`
	StudentMonthlyFeeAmount int    `json:"student_monthly_fee_amount" form:"student_monthly_fee_amount" validate:"required,gt=0"`
}

// Update (partial)
type StudentUpdateDTO struct {
	StudentName             *string `json:"student_name,omitempty" form:"student_name" validate:"omitempty,min=2,max=120"`
	StudentClass            *string `json:"student_class,omitempty" form:"student_class"`
	StudentFatherName       *string `json:"student_father_name,omitempty" form:"student_father_name" validate:"omitempty,min=2,max=120"`
	StudentMobile           *string `json:"student_mobile,omitempty" form:"student_mobile" validate:"omitempty,numeric,min=10,max=15"`
	StudentAdmissionDate    *string `json:"student_admission_date,omitempty" form:"student_admission_date" validate:"omitempty,datetime=2006-01-02"`
	StudentMonthlyFeeAmount *int    `json:"student_monthly_fee_amount,omitempty" form:"student_monthly_fee_amount" validate:"omitempty,gt=0"`
}

// Response
type StudentResponse struct {
	StudentID uuid.UUID `json:"student_id"`

	StudentName       string `json:"student_name"`
	StudentClass      string `json:"student_class"`
	StudentFatherName string `json:"student_father_name"`
	StudentMobile     string `json:"student_mobile"`

	StudentAdmissionDate    string  `json:"student_admission_date"`
	StudentProfileImageURL  *string `json:"student_profile_image_url,omitempty"`
	StudentMonthlyFeeAmount int     `json:"student_monthly_fee_amount"`

	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToStudentResponse(m studentModel.Student) StudentResponse {
	return StudentResponse{
		StudentID:               m.StudentID,
		StudentName:             m.StudentName,
		StudentClass:            m.StudentClass,
		StudentFatherName:       m.StudentFatherName,
		StudentMobile:           m.StudentMobile,
		StudentAdmissionDate:    m.StudentAdmissionDate.Format("2006-01-02"),
		StudentProfileImageURL:  m.StudentProfileImageURL,
		StudentMonthlyFeeAmount: m.StudentMonthlyFeeAmount,
		StudentCreatedAt:        m.StudentCreatedAt,
		StudentUpdatedAt:        m.StudentUpdatedAt,
	}
}

func ToStudentResponses(ms []studentModel.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
