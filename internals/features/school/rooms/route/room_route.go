// file: internals/features/school/rooms/route/room_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/rooms/controller"
)

func RoomUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoomController(db)

	rooms := user.Group("/rooms")
	rooms.Get("/availability", ctl.Availability)
	rooms.Get("/suggestions", ctl.Suggestions)
	rooms.Get("/:id/usage", ctl.Usage)
	rooms.Get("/:id", ctl.GetByID)
	rooms.Get("/", ctl.List)
}

func RoomAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoomController(db)

	rooms := admin.Group("/rooms")
	rooms.Post("/:id/restore", ctl.Restore)
	rooms.Post("/", ctl.Create)
	rooms.Patch("/:id", ctl.Update)
	rooms.Delete("/:id", ctl.Delete)
}
