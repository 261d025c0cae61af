// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/students/controller"
)

func StudentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	students := user.Group("/students")
	students.Get("/:id/academic-records", ctl.AcademicRecords)
	students.Get("/:id", ctl.GetByID)
}

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	students := admin.Group("/students")
	students.Get("/next-id", ctl.NextID)
	students.Get("/", ctl.List)
	students.Post("/", ctl.Create)
	students.Post("/promotions/bulk", ctl.BulkPromote)
	students.Post("/:id/promote", ctl.Promote)
	students.Patch("/:id", ctl.Update)
	students.Delete("/:id", ctl.Delete)
}
