package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	feeModel "feedesk_backend/internals/features/fees/model"
	studentModel "feedesk_backend/internals/features/students/model"
)

func TestSummarizePartitions(t *testing.T) {
	sid := uuid.New()
	tests := []struct {
		name    string
		records []feeModel.FeeRecord
		want    Summary
	}{
		{
			name:    "empty",
			records: nil,
			want:    Summary{},
		},
		{
			name: "mixed",
			records: []feeModel.FeeRecord{
				{FeeRecordStudentID: sid, FeeRecordAmount: 500, FeeRecordStatus: feeModel.FeeStatusPaid},
				{FeeRecordStudentID: sid, FeeRecordAmount: 500, FeeRecordStatus: feeModel.FeeStatusPaid},
				{FeeRecordStudentID: sid, FeeRecordAmount: 700, FeeRecordStatus: feeModel.FeeStatusUnpaid},
			},
			want: Summary{PaidCount: 2, UnpaidCount: 1, TotalPaid: 1000, TotalPending: 700},
		},
		{
			name: "all unpaid",
			records: []feeModel.FeeRecord{
				{FeeRecordAmount: 300, FeeRecordStatus: feeModel.FeeStatusUnpaid},
				{FeeRecordAmount: 300, FeeRecordStatus: feeModel.FeeStatusUnpaid},
			},
			want: Summary{UnpaidCount: 2, TotalPending: 600},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.records)
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}

			// partition invariants
			if got.PaidCount+got.UnpaidCount != len(tt.records) {
				t.Errorf("paid+unpaid = %d, want %d", got.PaidCount+got.UnpaidCount, len(tt.records))
			}
			sum := 0
			for _, r := range tt.records {
				sum += r.FeeRecordAmount
			}
			if got.TotalPaid+got.TotalPending != sum {
				t.Errorf("totalPaid+totalPending = %d, want %d", got.TotalPaid+got.TotalPending, sum)
			}
		})
	}
}

func TestMonthlyTotals(t *testing.T) {
	records := []feeModel.FeeRecord{
		{FeeRecordMonth: 12, FeeRecordYear: 2026, FeeRecordAmount: 500, FeeRecordStatus: feeModel.FeeStatusPaid},
		{FeeRecordMonth: 12, FeeRecordYear: 2026, FeeRecordAmount: 700, FeeRecordStatus: feeModel.FeeStatusUnpaid},
		{FeeRecordMonth: 11, FeeRecordYear: 2026, FeeRecordAmount: 500, FeeRecordStatus: feeModel.FeeStatusPaid},
		{FeeRecordMonth: 12, FeeRecordYear: 2025, FeeRecordAmount: 900, FeeRecordStatus: feeModel.FeeStatusPaid},
	}
	collected, pending := MonthlyTotals(records, 12, 2026)
	if collected != 500 {
		t.Errorf("collected = %d, want 500", collected)
	}
	if pending != 700 {
		t.Errorf("pending = %d, want 700", pending)
	}
}

func TestLatestFeeModes(t *testing.T) {
	sid := uuid.New()
	base := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	// Entered out of calendar order: the December record was created first,
	// the March record entered later (a correction).
	december := feeModel.FeeRecord{
		FeeRecordID: uuid.New(), FeeRecordStudentID: sid,
		FeeRecordMonth: 12, FeeRecordYear: 2026,
		FeeRecordStatus: feeModel.FeeStatusPaid, FeeRecordCreatedAt: base,
	}
	march := feeModel.FeeRecord{
		FeeRecordID: uuid.New(), FeeRecordStudentID: sid,
		FeeRecordMonth: 3, FeeRecordYear: 2026,
		FeeRecordStatus: feeModel.FeeStatusUnpaid, FeeRecordCreatedAt: base.Add(time.Hour),
	}
	records := []feeModel.FeeRecord{december, march}

	byInsertion := LatestFee(records, LatestByInsertion)
	if byInsertion == nil || byInsertion.FeeRecordMonth != 3 {
		t.Errorf("insertion mode picked month %v, want 3 (latest entered)", byInsertion)
	}

	byCalendar := LatestFee(records, LatestByCalendar)
	if byCalendar == nil || byCalendar.FeeRecordMonth != 12 {
		t.Errorf("calendar mode picked month %v, want 12 (calendar-latest)", byCalendar)
	}

	if LatestFee(nil, LatestByInsertion) != nil {
		t.Error("LatestFee(nil) must return nil")
	}
}

func TestFilterByLatestStatus(t *testing.T) {
	paidStudent := studentModel.Student{StudentID: uuid.New(), StudentName: "Aarav"}
	unpaidStudent := studentModel.Student{StudentID: uuid.New(), StudentName: "Diya"}
	noFeeStudent := studentModel.Student{StudentID: uuid.New(), StudentName: "Kabir"}
	students := []studentModel.Student{paidStudent, unpaidStudent, noFeeStudent}

	now := time.Now()
	records := []feeModel.FeeRecord{
		{FeeRecordStudentID: paidStudent.StudentID, FeeRecordMonth: 1, FeeRecordYear: 2026, FeeRecordStatus: feeModel.FeeStatusUnpaid, FeeRecordCreatedAt: now.Add(-time.Hour)},
		{FeeRecordStudentID: paidStudent.StudentID, FeeRecordMonth: 2, FeeRecordYear: 2026, FeeRecordStatus: feeModel.FeeStatusPaid, FeeRecordCreatedAt: now},
		{FeeRecordStudentID: unpaidStudent.StudentID, FeeRecordMonth: 2, FeeRecordYear: 2026, FeeRecordStatus: feeModel.FeeStatusUnpaid, FeeRecordCreatedAt: now},
	}

	paid := FilterByLatestStatus(students, records, feeModel.FeeStatusPaid, LatestByInsertion)
	if len(paid) != 1 || paid[0].StudentID != paidStudent.StudentID {
		t.Errorf("paid filter returned %d students, want only %s", len(paid), paidStudent.StudentName)
	}

	unpaid := FilterByLatestStatus(students, records, feeModel.FeeStatusUnpaid, LatestByInsertion)
	if len(unpaid) != 1 || unpaid[0].StudentID != unpaidStudent.StudentID {
		t.Errorf("unpaid filter returned %d students, want only %s", len(unpaid), unpaidStudent.StudentName)
	}
}
