// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// Owner (admin account)
	StudentUserID uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;index" json:"student_user_id"`

	StudentName       string `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentClass      string `gorm:"column:student_class;type:varchar(20);not null;index" json:"student_class"`
	StudentFatherName string `gorm:"column:student_father_name;type:varchar(120);not null" json:"student_father_name"`

	// Guardian phone, digits only. Siblings share one number, so this is an
	// index, not unique.
	StudentMobile string `gorm:"column:student_mobile;type:varchar(15);not null;index" json:"student_mobile"`

	StudentAdmissionDate   time.Time `gorm:"column:student_admission_date;type:date;not null" json:"student_admission_date"`
	StudentProfileImageURL *string   `gorm:"column:student_profile_image_url;type:text" json:"student_profile_image_url,omitempty"`

	// Current monthly fee, whole rupees. Fee records snapshot this value at
	// generation time and never follow later edits.
	StudentMonthlyFeeAmount int `gorm:"column:student_monthly_fee_amount;type:int;not null;check:student_monthly_fee_amount>0" json:"student_monthly_fee_amount"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;type:timestamptz;index" json:"-"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentUpdatedAt = time.Now()
	return nil
}
