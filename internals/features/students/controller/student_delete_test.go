// file: internals/features/students/controller/student_delete_test.go
package controller

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	feeModel "feedesk_backend/internals/features/fees/model"
	studentModel "feedesk_backend/internals/features/students/model"
	studentService "feedesk_backend/internals/features/students/service"
)

type memStudentStore struct {
	students map[uuid.UUID]studentModel.Student
	fees     map[uuid.UUID][]feeModel.FeeRecord // keyed by student id
}

func (m *memStudentStore) DeleteWithFees(_ context.Context, ownerID, studentID uuid.UUID) error {
	s, ok := m.students[studentID]
	if !ok || s.StudentUserID != ownerID {
		return studentService.ErrStudentNotFound
	}
	delete(m.fees, studentID)
	delete(m.students, studentID)
	return nil
}

func (m *memStudentStore) feesFor(studentID uuid.UUID) []feeModel.FeeRecord {
	return m.fees[studentID]
}

func newDeleteApp(owner uuid.UUID, store *memStudentStore) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", owner.String())
		return c.Next()
	})
	h := &StudentHandler{Store: store}
	app.Delete("/students/:id", h.Delete)
	return app
}

func deleteStudent(t *testing.T, app *fiber.App, id uuid.UUID) int {
	t.Helper()
	req := httptest.NewRequest("DELETE", "/students/"+id.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestDeleteStudentRemovesFeeRecords(t *testing.T) {
	owner := uuid.New()
	target := uuid.New()
	sibling := uuid.New()

	store := &memStudentStore{
		students: map[uuid.UUID]studentModel.Student{
			target:  {StudentID: target, StudentUserID: owner, StudentName: "Aarav"},
			sibling: {StudentID: sibling, StudentUserID: owner, StudentName: "Diya"},
		},
		fees: map[uuid.UUID][]feeModel.FeeRecord{
			target: {
				{FeeRecordStudentID: target, FeeRecordMonth: 1, FeeRecordYear: 2026, FeeRecordAmount: 700},
				{FeeRecordStudentID: target, FeeRecordMonth: 2, FeeRecordYear: 2026, FeeRecordAmount: 700},
			},
			sibling: {
				{FeeRecordStudentID: sibling, FeeRecordMonth: 1, FeeRecordYear: 2026, FeeRecordAmount: 500},
			},
		},
	}
	app := newDeleteApp(owner, store)

	if status := deleteStudent(t, app, target); status != fiber.StatusOK {
		t.Fatalf("delete status = %d, want 200", status)
	}

	// the student's fee records must go with them
	if got := store.feesFor(target); len(got) != 0 {
		t.Errorf("fee records after delete = %d, want 0", len(got))
	}
	if _, ok := store.students[target]; ok {
		t.Error("student still present after delete")
	}

	// the sibling's records are untouched
	if got := store.feesFor(sibling); len(got) != 1 {
		t.Errorf("sibling fee records = %d, want 1", len(got))
	}

	// the student is gone now, so a repeat delete is a 404
	if status := deleteStudent(t, app, target); status != fiber.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", status)
	}
}

func TestDeleteStudentOwnedByAnotherAdmin(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	foreign := uuid.New()

	store := &memStudentStore{
		students: map[uuid.UUID]studentModel.Student{
			foreign: {StudentID: foreign, StudentUserID: other, StudentName: "Kabir"},
		},
		fees: map[uuid.UUID][]feeModel.FeeRecord{
			foreign: {
				{FeeRecordStudentID: foreign, FeeRecordMonth: 1, FeeRecordYear: 2026, FeeRecordAmount: 700},
			},
		},
	}
	app := newDeleteApp(owner, store)

	if status := deleteStudent(t, app, foreign); status != fiber.StatusNotFound {
		t.Fatalf("delete status = %d, want 404", status)
	}
	if got := store.feesFor(foreign); len(got) != 1 {
		t.Errorf("foreign fee records = %d, want 1 untouched", len(got))
	}
}
