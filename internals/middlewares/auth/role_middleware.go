// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// OnlyAdmin guards admin-only route groups.
func OnlyAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := helperAuth.EnsureAdmin(c, db); err != nil {
			return err
		}
		return c.Next()
	}
}

// OnlyTeacher allows admins and teachers.
func OnlyTeacher(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := helperAuth.EnsureRole(c, db, constants.RoleTagTeacher); err != nil {
			return err
		}
		return c.Next()
	}
}
