// file: internals/features/fees/service/aggregate.go
package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	feeModel "feedesk_backend/internals/features/fees/model"
	studentModel "feedesk_backend/internals/features/students/model"
	"feedesk_backend/internals/configs"
)

/* ==============================
   SUMMARY
============================== */

type Summary struct {
	PaidCount    int `json:"paid_count"`
	UnpaidCount  int `json:"unpaid_count"`
	TotalPaid    int `json:"total_paid"`
	TotalPending int `json:"total_pending"`
}

// Summarize partitions a record set strictly by status. Every record lands in
// exactly one partition, so PaidCount+UnpaidCount == len(records) and
// TotalPaid+TotalPending == sum of all amounts.
func Summarize(records []feeModel.FeeRecord) Summary {
	var s Summary
	for _, r := range records {
		if r.FeeRecordStatus == feeModel.FeeStatusPaid {
			s.PaidCount++
			s.TotalPaid += r.FeeRecordAmount
		} else {
			s.UnpaidCount++
			s.TotalPending += r.FeeRecordAmount
		}
	}
	return s
}

// MonthlyTotals sums collected and pending amounts across all students for
// one specific month/year (the dashboard stat cards).
func MonthlyTotals(records []feeModel.FeeRecord, month, year int) (collected, pending int) {
	for _, r := range records {
		if int(r.FeeRecordMonth) != month || int(r.FeeRecordYear) != year {
			continue
		}
		if r.FeeRecordStatus == feeModel.FeeStatusPaid {
			collected += r.FeeRecordAmount
		} else {
			pending += r.FeeRecordAmount
		}
	}
	return collected, pending
}

/* ==============================
   LATEST-FEE CLASSIFICATION
============================== */

type LatestMode int

const (
	// LatestByInsertion classifies a student by the most recently created
	// record, regardless of which month it covers. This matches the behavior
	// the admin UI has always shown.
	LatestByInsertion LatestMode = iota
	// LatestByCalendar classifies by the calendar-latest (year, month)
	// instead. Opt in via FEE_LATEST_MODE=calendar.
	LatestByCalendar
)

func LatestModeFromEnv() LatestMode {
	if strings.EqualFold(configs.GetEnv("FEE_LATEST_MODE", "insertion"), "calendar") {
		return LatestByCalendar
	}
	return LatestByInsertion
}

// LatestFee picks the record that classifies a student's current payment
// status. Returns nil when the student has no records.
func LatestFee(records []feeModel.FeeRecord, mode LatestMode) *feeModel.FeeRecord {
	if len(records) == 0 {
		return nil
	}
	sorted := make([]feeModel.FeeRecord, len(records))
	copy(sorted, records)

	switch mode {
	case LatestByCalendar:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].FeeRecordYear != sorted[j].FeeRecordYear {
				return sorted[i].FeeRecordYear > sorted[j].FeeRecordYear
			}
			return sorted[i].FeeRecordMonth > sorted[j].FeeRecordMonth
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].FeeRecordCreatedAt.After(sorted[j].FeeRecordCreatedAt)
		})
	}
	return &sorted[0]
}

// FilterByLatestStatus keeps the students whose latest fee record carries the
// given status. Students with no fee records never match.
func FilterByLatestStatus(students []studentModel.Student, records []feeModel.FeeRecord, status feeModel.FeeStatus, mode LatestMode) []studentModel.Student {
	byStudent := make(map[uuid.UUID][]feeModel.FeeRecord, len(students))
	for _, r := range records {
		byStudent[r.FeeRecordStudentID] = append(byStudent[r.FeeRecordStudentID], r)
	}

	out := make([]studentModel.Student, 0, len(students))
	for _, s := range students {
		latest := LatestFee(byStudent[s.StudentID], mode)
		if latest != nil && latest.FeeRecordStatus == status {
			out = append(out, s)
		}
	}
	return out
}
