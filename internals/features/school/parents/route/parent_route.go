// file: internals/features/school/parents/route/parent_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/parents/controller"
)

func ParentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewParentController(db)

	parents := user.Group("/parents")
	parents.Get("/students/:studentId/emergency-contacts", ctl.EmergencyContacts)
	parents.Get("/:id/students", ctl.ListStudents)
}

func ParentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewParentController(db)

	parents := admin.Group("/parents")
	parents.Post("/relationships", ctl.CreateRelationship)
	parents.Get("/", ctl.List)
	parents.Post("/", ctl.Create)
}
