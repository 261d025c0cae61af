// file: internals/features/school/student_services/route/student_service_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/student_services/controller"
)

func StudentServiceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentServiceController(db)

	services := user.Group("/student-services")
	services.Get("/tags", ctl.ListTags)
	services.Get("/students/:studentId", ctl.ListStudentNeeds)
}

func StudentServiceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentServiceController(db)

	services := admin.Group("/student-services")
	services.Post("/tags", ctl.CreateTag)
	services.Put("/tags/:id", ctl.UpdateTag)
	services.Delete("/tags/:id", ctl.DeleteTag)
	services.Post("/assignments", ctl.AssignNeed)
	services.Patch("/assignments/:id", ctl.UpdateNeed)
}
