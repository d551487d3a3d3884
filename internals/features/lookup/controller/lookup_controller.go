// file: internals/features/lookup/controller/lookup_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "feedesk_backend/internals/features/lookup/dto"
	lookupService "feedesk_backend/internals/features/lookup/service"
	helper "feedesk_backend/internals/helpers"
)

type LookupHandler struct {
	Store lookupService.LookupStore
}

// Lookup is the guardian-facing fee-status endpoint. The response shapes are
// a public contract with the school's status page, so they bypass the admin
// json envelope on purpose.
func (h *LookupHandler) Lookup(c *fiber.Ctx) error {
	var in dto.LookupRequestDTO
	if err := c.BodyParser(&in); err != nil {
		// an unparseable body is malformed caller input, so it gets the 400
		// shape rather than a server fault
		return invalidMobile(c)
	}

	mobile := helper.DigitsOnly(strings.TrimSpace(in.Mobile))
	if len(mobile) < 10 {
		return invalidMobile(c)
	}

	students, err := h.Store.FindStudentsByMobile(c.Context(), mobile)
	if err != nil {
		log.Printf("[ERROR] lookup students by mobile: %v", err)
		return fetchFailed(c)
	}
	if len(students) == 0 {
		return c.Status(fiber.StatusOK).JSON(dto.LookupResponse{Students: []dto.LookupStudent{}})
	}

	ids := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.StudentID)
	}
	records, err := h.Store.ListFeesForStudents(c.Context(), ids)
	if err != nil {
		log.Printf("[ERROR] lookup fees by students: %v", err)
		return fetchFailed(c)
	}

	// records arrive ordered (year desc, created desc); the grouping keeps
	// that order per student
	feesByStudent := make(map[uuid.UUID][]dto.LookupFee, len(students))
	for _, r := range records {
		feesByStudent[r.FeeRecordStudentID] = append(feesByStudent[r.FeeRecordStudentID], dto.LookupFee{
			Month:  int(r.FeeRecordMonth),
			Year:   int(r.FeeRecordYear),
			Amount: r.FeeRecordAmount,
			Status: string(r.FeeRecordStatus),
		})
	}

	out := make([]dto.LookupStudent, 0, len(students))
	for _, s := range students {
		fees := feesByStudent[s.StudentID]
		if fees == nil {
			fees = []dto.LookupFee{}
		}
		out = append(out, dto.LookupStudent{
			ID:    s.StudentID,
			Name:  s.StudentName,
			Class: s.StudentClass,
			Fees:  fees,
		})
	}
	return c.Status(fiber.StatusOK).JSON(dto.LookupResponse{Students: out})
}

func invalidMobile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.LookupErrorResponse{
		Error:    "Invalid mobile number",
		Students: []dto.LookupStudent{},
	})
}

func fetchFailed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.LookupErrorResponse{
		Error:    "Failed to fetch data",
		Students: []dto.LookupStudent{},
	})
}
