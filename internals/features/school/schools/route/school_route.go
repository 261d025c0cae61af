// file: internals/features/school/schools/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/schools/controller"
)

func SchoolUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolController(db)

	schools := user.Group("/schools")
	schools.Get("/", ctl.List)
	schools.Get("/:id", ctl.GetByID)
}

func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolController(db)

	schools := admin.Group("/schools")
	schools.Post("/", ctl.Create)
	schools.Patch("/:id", ctl.Update)
}
