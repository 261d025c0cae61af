package constants

import "strings"

// Canonical role tags stored on every role grant. Authorization gates check
// the tag first; the alias substring match below stays as a fallback for
// legacy free-text labels.
const (
	RoleTagAdmin   = "ADMIN"
	RoleTagTeacher = "TEACHER"
	RoleTagParent  = "PARENT"
	RoleTagStaff   = "STAFF"
	RoleTagOther   = "OTHER"
)

// ==========================
// Admin alias list
// ==========================
// Free-text role labels that count as "admin-ish". Matched as
// case-insensitive substrings against the grant's role label.
var AdminAliases = []string{
	"admin", "administrator",
	"principal", "vice principal", "vp",
	"dean", "staff", "staff admin",
}

// IsAdminish reports whether a free-text role label matches the alias list.
func IsAdminish(roleLabel string) bool {
	s := strings.ToLower(strings.TrimSpace(roleLabel))
	if s == "" {
		return false
	}
	for _, alias := range AdminAliases {
		if strings.Contains(s, alias) {
			return true
		}
	}
	return false
}

// RoleTagFor maps a free-text role label to its canonical tag at grant
// ingestion time.
func RoleTagFor(roleLabel string) string {
	s := strings.ToLower(strings.TrimSpace(roleLabel))
	switch {
	case IsAdminish(s):
		return RoleTagAdmin
	case strings.Contains(s, "teacher"):
		return RoleTagTeacher
	case strings.Contains(s, "parent"), strings.Contains(s, "guardian"):
		return RoleTagParent
	case strings.Contains(s, "staff"), strings.Contains(s, "aide"):
		return RoleTagStaff
	default:
		return RoleTagOther
	}
}
