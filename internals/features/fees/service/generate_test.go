package service

import (
	"testing"

	"github.com/google/uuid"

	feeModel "feedesk_backend/internals/features/fees/model"
	studentModel "feedesk_backend/internals/features/students/model"
)

func record(studentID uuid.UUID, month, year int16, status feeModel.FeeStatus) feeModel.FeeRecord {
	return feeModel.FeeRecord{
		FeeRecordID:        uuid.New(),
		FeeRecordStudentID: studentID,
		FeeRecordMonth:     month,
		FeeRecordYear:      year,
		FeeRecordAmount:    500,
		FeeRecordStatus:    status,
	}
}

func TestMissingMonths(t *testing.T) {
	sid := uuid.New()
	tests := []struct {
		name     string
		existing []feeModel.FeeRecord
		want     []int
	}{
		{
			name:     "empty year needs all twelve",
			existing: nil,
			want:     []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		},
		{
			name: "partial year",
			existing: []feeModel.FeeRecord{
				record(sid, 1, 2026, feeModel.FeeStatusPaid),
				record(sid, 2, 2026, feeModel.FeeStatusUnpaid),
				record(sid, 12, 2026, feeModel.FeeStatusUnpaid),
			},
			want: []int{3, 4, 5, 6, 7, 8, 9, 10, 11},
		},
		{
			name: "complete year is a no-op",
			existing: func() []feeModel.FeeRecord {
				var out []feeModel.FeeRecord
				for m := int16(1); m <= 12; m++ {
					out = append(out, record(sid, m, 2026, feeModel.FeeStatusPaid))
				}
				return out
			}(),
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingMonths(tt.existing)
			if len(got) != len(tt.want) {
				t.Fatalf("MissingMonths() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("MissingMonths()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Running generation against an already-complete year must plan zero inserts:
// the second call of a double generation creates nothing and never touches
// paid records.
func TestGenerateTwiceIsIdempotent(t *testing.T) {
	student := studentModel.Student{
		StudentID:               uuid.New(),
		StudentMonthlyFeeAmount: 700,
	}
	owner := uuid.New()

	first := PlanYear(student, owner, 2026, MissingMonths(nil))
	if len(first) != 12 {
		t.Fatalf("first generation planned %d records, want 12", len(first))
	}

	second := PlanYear(student, owner, 2026, MissingMonths(first))
	if len(second) != 0 {
		t.Errorf("second generation planned %d records, want 0", len(second))
	}
}

func TestPlanYearSnapshotsAmount(t *testing.T) {
	student := studentModel.Student{
		StudentID:               uuid.New(),
		StudentMonthlyFeeAmount: 700,
	}
	owner := uuid.New()

	plan := PlanYear(student, owner, 2026, MissingMonths(nil))

	// later fee change must not affect the planned records
	student.StudentMonthlyFeeAmount = 900

	for _, r := range plan {
		if r.FeeRecordAmount != 700 {
			t.Fatalf("month %d amount = %d, want snapshot 700", r.FeeRecordMonth, r.FeeRecordAmount)
		}
		if r.FeeRecordStatus != feeModel.FeeStatusUnpaid {
			t.Errorf("month %d status = %q, want unpaid", r.FeeRecordMonth, r.FeeRecordStatus)
		}
		if r.FeeRecordPaymentMethod != nil || r.FeeRecordPaidAt != nil {
			t.Errorf("month %d generated with payment fields set", r.FeeRecordMonth)
		}
	}
}
