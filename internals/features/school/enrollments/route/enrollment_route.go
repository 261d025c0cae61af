// file: internals/features/school/enrollments/route/enrollment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/enrollments/controller"
)

func EnrollmentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db)

	enrollments := user.Group("/enrollments")
	enrollments.Get("/students/:studentId", ctl.ListByStudent)
	enrollments.Get("/classrooms/:classroomId/students", ctl.Roster)
	enrollments.Get("/:id", ctl.GetByID)
	enrollments.Get("/", ctl.List)
	enrollments.Post("/", ctl.Create)
}

func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db)

	enrollments := admin.Group("/enrollments")
	enrollments.Post("/:id/withdraw", ctl.Withdraw)
	enrollments.Post("/:id/reactivate", ctl.Reactivate)
	enrollments.Patch("/:id", ctl.Update)
	enrollments.Delete("/:id", ctl.Delete)
}
