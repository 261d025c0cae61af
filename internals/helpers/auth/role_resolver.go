// file: internals/helpers/auth/role_resolver.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	helper "schoolhub_backend/internals/helpers"
)

const LocRoleGrants = "role_grants"

// RoleGrant is the flattened view of a user_school_roles row carried through
// the request. Role keeps the original free-text label, RoleTag the canonical
// tag computed at ingestion.
type RoleGrant struct {
	SchoolID uuid.UUID `json:"school_id"`
	Role     string    `json:"role"`
	RoleTag  string    `json:"role_tag"`
	IsActive bool      `json:"is_active"`
}

// LoadRoleGrants pulls all active grants for a user. Raw query so this helper
// does not depend on any feature package.
func LoadRoleGrants(db *gorm.DB, userID uuid.UUID) ([]RoleGrant, error) {
	var grants []RoleGrant
	err := db.Raw(`
		SELECT user_school_role_school_id  AS school_id,
		       user_school_role_role       AS role,
		       user_school_role_role_tag   AS role_tag,
		       user_school_role_is_active  AS is_active
		FROM user_school_roles
		WHERE user_school_role_user_id = ?
		  AND user_school_role_is_active = TRUE
		  AND user_school_role_deleted_at IS NULL
	`, userID).Scan(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

func SetRoleGrants(c *fiber.Ctx, grants []RoleGrant) {
	c.Locals(LocRoleGrants, grants)
}

func GetRoleGrants(c *fiber.Ctx) []RoleGrant {
	if v, ok := c.Locals(LocRoleGrants).([]RoleGrant); ok {
		return v
	}
	return nil
}

// IsAdminGrant checks the canonical tag first, then falls back to the alias
// substring match for legacy labels stored before tags existed.
func IsAdminGrant(g RoleGrant) bool {
	if !g.IsActive {
		return false
	}
	if g.RoleTag == constants.RoleTagAdmin {
		return true
	}
	return constants.IsAdminish(g.Role)
}

func IsAdmin(grants []RoleGrant) bool {
	for _, g := range grants {
		if IsAdminGrant(g) {
			return true
		}
	}
	return false
}

func HasRoleTag(grants []RoleGrant, tag string) bool {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	for _, g := range grants {
		if g.IsActive && g.RoleTag == tag {
			return true
		}
	}
	return false
}

// EnsureAdmin gates admin-only handlers. Loads grants lazily from the DB when
// the middleware has not populated them yet.
func EnsureAdmin(c *fiber.Ctx, db *gorm.DB) error {
	grants := GetRoleGrants(c)
	if grants == nil {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		grants, err = LoadRoleGrants(db, userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load role grants")
		}
		SetRoleGrants(c, grants)
	}
	if !IsAdmin(grants) {
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}
	return nil
}

// EnsureRole gates handlers on a canonical role tag. Admins always pass.
func EnsureRole(c *fiber.Ctx, db *gorm.DB, tag string) error {
	grants := GetRoleGrants(c)
	if grants == nil {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		grants, err = LoadRoleGrants(db, userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load role grants")
		}
		SetRoleGrants(c, grants)
	}
	if IsAdmin(grants) || HasRoleTag(grants, tag) {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "insufficient role")
}
