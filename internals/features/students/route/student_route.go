// file: internals/features/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "feedesk_backend/internals/features/fees/controller"
	controller "feedesk_backend/internals/features/students/controller"
	studentService "feedesk_backend/internals/features/students/service"
	osshelper "feedesk_backend/internals/helpers/oss"
)

// StudentAdminRoutes mounts the student CRUD and the per-student fee
// endpoints on the authenticated admin group.
// Base: /api/a
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB, blob osshelper.BlobService) {
	studentController := &controller.StudentHandler{
		DB:    db,
		Blob:  blob,
		Store: &studentService.GormStore{DB: db},
	}
	feeRecordController := &feeController.FeeRecordHandler{DB: db}

	students := admin.Group("/students")
	students.Get("/", studentController.List)
	students.Post("/", studentController.Create)
	students.Get("/:id", studentController.GetByID)
	students.Put("/:id", studentController.Update)
	students.Delete("/:id", studentController.Delete)

	// per-student fee surface
	students.Get("/:id/fees", feeRecordController.ListByStudent)
	students.Get("/:id/fees/summary", feeRecordController.Summary)
	students.Post("/:id/fees/generate", feeRecordController.GenerateFees)
}
