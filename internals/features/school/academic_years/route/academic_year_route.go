// file: internals/features/school/academic_years/route/academic_year_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/academic_years/controller"
)

func AcademicYearUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademicYearController(db)

	years := user.Group("/academic-years")
	years.Get("/", ctl.List)
	years.Get("/active", ctl.GetActive)
}

func AcademicYearAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademicYearController(db)

	years := admin.Group("/academic-years")
	years.Post("/", ctl.Create)
	years.Patch("/:id/activate", ctl.Activate)
	years.Patch("/:id", ctl.Update)
}
