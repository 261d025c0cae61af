// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mounts user management under the admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := admin.Group("/users")
	users.Get("/teachers", ctl.ListTeachers)
	users.Post("/", ctl.Create)
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.GetByID)
	users.Post("/:id/roles", ctl.GrantRole)
	users.Delete("/:id/roles/:roleId", ctl.RevokeRole)
	users.Patch("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
