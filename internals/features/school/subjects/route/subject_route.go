// file: internals/features/school/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/subjects/controller"
)

func SubjectUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	subjects := user.Group("/subjects")
	subjects.Get("/core", ctl.ListHomeroomDefaults)
	subjects.Get("/", ctl.List)
}

func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	subjects := admin.Group("/subjects")
	subjects.Post("/", ctl.Create)
	subjects.Put("/:id", ctl.Update)
	subjects.Patch("/:id", ctl.Update)
	subjects.Delete("/:id", ctl.Delete)
}
