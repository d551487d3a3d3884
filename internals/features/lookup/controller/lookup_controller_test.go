// file: internals/features/lookup/controller/lookup_controller_test.go
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	feeModel "feedesk_backend/internals/features/fees/model"
	studentModel "feedesk_backend/internals/features/students/model"
)

type fakeLookupStore struct {
	students []studentModel.Student
	fees     []feeModel.FeeRecord
	failWith error
}

func (f *fakeLookupStore) FindStudentsByMobile(_ context.Context, mobile string) ([]studentModel.Student, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []studentModel.Student
	for _, s := range f.students {
		if s.StudentMobile == mobile {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeLookupStore) ListFeesForStudents(_ context.Context, ids []uuid.UUID) ([]feeModel.FeeRecord, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	keep := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	var out []feeModel.FeeRecord
	for _, r := range f.fees {
		if keep[r.FeeRecordStudentID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func newLookupApp(store *fakeLookupStore) *fiber.App {
	app := fiber.New()
	h := &LookupHandler{Store: store}
	app.Post("/lookup", h.Lookup)
	return app
}

func postLookup(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/lookup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	return resp.StatusCode, parsed
}

func TestLookupRejectsShortMobile(t *testing.T) {
	app := newLookupApp(&fakeLookupStore{})

	tests := []struct {
		name string
		body string
	}{
		{"nine digits", `{"mobile":"987654321"}`},
		{"nine digits padded", `{"mobile":"  987654321  "}`},
		{"nine digits with dashes", `{"mobile":"98-76-54-321"}`},
		{"empty", `{"mobile":""}`},
		{"not json", `mobile=987654321`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := postLookup(t, app, tt.body)
			if status != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want 400", status)
			}
			if body["error"] != "Invalid mobile number" {
				t.Errorf("error = %v, want %q", body["error"], "Invalid mobile number")
			}
			students, ok := body["students"].([]any)
			if !ok || len(students) != 0 {
				t.Errorf("students = %v, want empty array", body["students"])
			}
		})
	}
}

func TestLookupStripsNonDigitsBeforeMatching(t *testing.T) {
	id := uuid.New()
	store := &fakeLookupStore{
		students: []studentModel.Student{
			{StudentID: id, StudentName: "Aarav", StudentClass: "class3", StudentMobile: "9876543210"},
		},
	}
	app := newLookupApp(store)

	status, body := postLookup(t, app, `{"mobile":" +98-7654-3210 "}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	students := body["students"].([]any)
	if len(students) != 1 {
		t.Fatalf("len(students) = %d, want 1", len(students))
	}
}

func TestLookupReturnsAllSiblings(t *testing.T) {
	older := uuid.New()
	younger := uuid.New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	method := feeModel.PaymentMethodCash

	store := &fakeLookupStore{
		students: []studentModel.Student{
			{StudentID: older, StudentName: "Aarav", StudentClass: "class5", StudentMobile: "9876543210"},
			{StudentID: younger, StudentName: "Diya", StudentClass: "class2", StudentMobile: "9876543210"},
		},
		fees: []feeModel.FeeRecord{
			{
				FeeRecordID:            uuid.New(),
				FeeRecordStudentID:     older,
				FeeRecordMonth:         1,
				FeeRecordYear:          2026,
				FeeRecordAmount:        700,
				FeeRecordStatus:        feeModel.FeeStatusPaid,
				FeeRecordPaymentMethod: &method,
				FeeRecordCreatedAt:     base,
			},
			{
				FeeRecordID:        uuid.New(),
				FeeRecordStudentID: older,
				FeeRecordMonth:     2,
				FeeRecordYear:      2026,
				FeeRecordAmount:    700,
				FeeRecordStatus:    feeModel.FeeStatusUnpaid,
				FeeRecordCreatedAt: base.Add(time.Hour),
			},
			{
				FeeRecordID:        uuid.New(),
				FeeRecordStudentID: younger,
				FeeRecordMonth:     1,
				FeeRecordYear:      2026,
				FeeRecordAmount:    500,
				FeeRecordStatus:    feeModel.FeeStatusUnpaid,
				FeeRecordCreatedAt: base,
			},
		},
	}
	app := newLookupApp(store)

	status, body := postLookup(t, app, `{"mobile":"9876543210"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	students := body["students"].([]any)
	if len(students) != 2 {
		t.Fatalf("len(students) = %d, want 2 siblings", len(students))
	}

	feeCounts := map[string]int{}
	for _, raw := range students {
		s := raw.(map[string]any)
		name := s["name"].(string)
		fees := s["fees"].([]any)
		feeCounts[name] = len(fees)

		for _, rawFee := range fees {
			fee := rawFee.(map[string]any)
			for _, key := range []string{"month", "year", "amount", "status"} {
				if _, ok := fee[key]; !ok {
					t.Errorf("student %s fee missing %q: %v", name, key, fee)
				}
			}
			// payment internals never leave the server
			for _, key := range []string{"payment_method", "paymentMethod", "transaction_id", "transactionId", "fee_record_id"} {
				if _, ok := fee[key]; ok {
					t.Errorf("student %s fee leaks %q: %v", name, key, fee)
				}
			}
		}
	}
	if feeCounts["Aarav"] != 2 {
		t.Errorf("Aarav fee count = %d, want 2", feeCounts["Aarav"])
	}
	if feeCounts["Diya"] != 1 {
		t.Errorf("Diya fee count = %d, want 1", feeCounts["Diya"])
	}
}

func TestLookupUnknownMobileReturnsEmptyList(t *testing.T) {
	app := newLookupApp(&fakeLookupStore{})

	status, body := postLookup(t, app, `{"mobile":"9999999999"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	students, ok := body["students"].([]any)
	if !ok || len(students) != 0 {
		t.Errorf("students = %v, want empty array", body["students"])
	}
}

func TestLookupStoreFailure(t *testing.T) {
	app := newLookupApp(&fakeLookupStore{failWith: errors.New("connection refused")})

	status, body := postLookup(t, app, `{"mobile":"9876543210"}`)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if body["error"] != "Failed to fetch data" {
		t.Errorf("error = %v, want %q", body["error"], "Failed to fetch data")
	}
	students, ok := body["students"].([]any)
	if !ok || len(students) != 0 {
		t.Errorf("students = %v, want empty array", body["students"])
	}
}
