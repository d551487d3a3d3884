// file: internals/features/fees/service/generate.go
package service

import (
	"github.com/google/uuid"

	feeModel "feedesk_backend/internals/features/fees/model"
	studentModel "feedesk_backend/internals/features/students/model"
	helper "feedesk_backend/internals/helpers"
)

// MissingMonths returns the calendar months (1..12) that have no fee record
// yet in the given set. The input is whatever already exists for one
// (student, year); months outside 1..12 are ignored.
func MissingMonths(existing []feeModel.FeeRecord) []int {
	seen := [13]bool{}
	for _, r := range existing {
		if r.FeeRecordMonth >= 1 && r.FeeRecordMonth <= 12 {
			seen[r.FeeRecordMonth] = true
		}
	}
	var out []int
	for _, m := range helper.MonthNumbers() {
		if !seen[m] {
			out = append(out, m)
		}
	}
	return out
}

// PlanYear builds the unpaid records to insert for the missing months of one
// year. The amount is a snapshot of the student's current monthly fee; later
// edits to the student never touch records that already exist.
func PlanYear(student studentModel.Student, ownerID uuid.UUID, year int, missing []int) []feeModel.FeeRecord {
	out := make([]feeModel.FeeRecord, 0, len(missing))
	for _, m := range missing {
		out = append(out, feeModel.FeeRecord{
			FeeRecordStudentID: student.StudentID,
			FeeRecordUserID:    ownerID,
			FeeRecordMonth:     int16(m),
			FeeRecordYear:      int16(year),
			FeeRecordAmount:    student.StudentMonthlyFeeAmount,
			FeeRecordStatus:    feeModel.FeeStatusUnpaid,
		})
	}
	return out
}
