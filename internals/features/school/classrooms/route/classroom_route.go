// file: internals/features/school/classrooms/route/classroom_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/classrooms/controller"
)

func ClassroomUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassroomController(db)

	classrooms := user.Group("/classrooms")
	classrooms.Get("/:id/teachers", ctl.ListTeachers)
	classrooms.Get("/:id", ctl.GetByID)
	classrooms.Get("/", ctl.List)
}

func ClassroomTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassroomController(db)

	classrooms := teacher.Group("/classrooms")
	classrooms.Get("/", ctl.ListMine)
}

func ClassroomAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassroomController(db)

	classrooms := admin.Group("/classrooms")
	classrooms.Post("/homeroom", ctl.CreateHomeroom)
	classrooms.Post("/:id/teachers", ctl.AssignTeacher)
	classrooms.Delete("/:id/teachers/:assignmentId", ctl.UnassignTeacher)
	classrooms.Post("/", ctl.Create)
	classrooms.Put("/:id", ctl.Update)
	classrooms.Patch("/:id", ctl.Update)
	classrooms.Delete("/:id", ctl.Delete)
}
