// file: internals/features/school/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/dashboard/controller"
)

func DashboardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)

	dashboard := admin.Group("/dashboard")
	dashboard.Get("/overview", ctl.AdminOverview)
}
