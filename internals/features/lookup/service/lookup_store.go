// file: internals/features/lookup/service/lookup_store.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "feedesk_backend/internals/features/fees/model"
	studentModel "feedesk_backend/internals/features/students/model"
)

// LookupStore is the read surface behind the public fee-status page. The
// lookup is guardian-facing and deliberately not owner-scoped: the phone
// number is the key, whichever admin account registered the student.
type LookupStore interface {
	FindStudentsByMobile(ctx context.Context, mobile string) ([]studentModel.Student, error)
	ListFeesForStudents(ctx context.Context, studentIDs []uuid.UUID) ([]feeModel.FeeRecord, error)
}

type GormLookupStore struct {
	DB *gorm.DB
}

func (s *GormLookupStore) FindStudentsByMobile(ctx context.Context, mobile string) ([]studentModel.Student, error) {
	var students []studentModel.Student
	err := s.DB.WithContext(ctx).
		Where("student_mobile = ?", mobile).
		Order("student_name ASC").
		Find(&students).Error
	return students, err
}

func (s *GormLookupStore) ListFeesForStudents(ctx context.Context, studentIDs []uuid.UUID) ([]feeModel.FeeRecord, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}
	var records []feeModel.FeeRecord
	err := s.DB.WithContext(ctx).
		Where("fee_record_student_id IN ?", studentIDs).
		Order("fee_record_year DESC, fee_record_created_at DESC").
		Find(&records).Error
	return records, err
}
