// file: internals/features/students/service/store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "feedesk_backend/internals/features/fees/model"
	studentModel "feedesk_backend/internals/features/students/model"
)

var ErrStudentNotFound = errors.New("student not found")

// Store is the write surface behind the destructive student operations.
// Small interface so handler tests can run against an in-memory
// implementation.
type Store interface {
	// DeleteWithFees removes the owner's student together with every fee
	// record that belongs to them, in one transaction. Referential integrity
	// is the application's job here, not the database's.
	DeleteWithFees(ctx context.Context, ownerID, studentID uuid.UUID) error
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) DeleteWithFees(ctx context.Context, ownerID, studentID uuid.UUID) error {
	var student studentModel.Student
	err := s.DB.WithContext(ctx).
		Where("student_id = ? AND student_user_id = ?", studentID, ownerID).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("fee_record_student_id = ? AND fee_record_user_id = ?", studentID, ownerID).
			Delete(&feeModel.FeeRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
}
