// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/auth/controller"
	"schoolhub_backend/internals/middlewares"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public login/register endpoints and the
// token-protected session endpoints.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	public := app.Group("/api/auth")
	public.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	public.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	public.Post("/refresh", ctl.Refresh)

	authed := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	authed.Post("/logout", ctl.Logout)
	authed.Get("/me", ctl.Me)
	authed.Get("/context", ctl.Context)
	authed.Post("/preference", ctl.SetPreference)
}
