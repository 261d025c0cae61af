package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdminish(t *testing.T) {
	for _, label := range []string{
		"admin", "Administrator", "PRINCIPAL", "Vice Principal",
		"vp", "Dean of Students", "staff", "Staff Admin", "  admin  ",
	} {
		assert.True(t, IsAdminish(label), label)
	}
	for _, label := range []string{"teacher", "parent", "guardian", "aide", ""} {
		assert.False(t, IsAdminish(label), label)
	}
}

func TestRoleTagFor(t *testing.T) {
	assert.Equal(t, RoleTagAdmin, RoleTagFor("Principal"))
	assert.Equal(t, RoleTagAdmin, RoleTagFor("staff admin"))
	assert.Equal(t, RoleTagTeacher, RoleTagFor("Lead Teacher"))
	assert.Equal(t, RoleTagParent, RoleTagFor("parent"))
	assert.Equal(t, RoleTagParent, RoleTagFor("Legal Guardian"))
	assert.Equal(t, RoleTagStaff, RoleTagFor("classroom aide"))
	assert.Equal(t, RoleTagOther, RoleTagFor("volunteer"))
	assert.Equal(t, RoleTagOther, RoleTagFor(""))
}

func TestNextGrade(t *testing.T) {
	next, ok := NextGrade("PK")
	assert.True(t, ok)
	assert.Equal(t, "K", next)

	next, ok = NextGrade("8")
	assert.True(t, ok)
	assert.Equal(t, GradeGraduated, next)

	_, ok = NextGrade("SPED")
	assert.False(t, ok)
	_, ok = NextGrade(GradeGraduated)
	assert.False(t, ok)
}

func TestIsAllowedTimezone(t *testing.T) {
	assert.True(t, IsAllowedTimezone("America/Chicago"))
	assert.True(t, IsAllowedTimezone(DefaultTimezone))
	assert.False(t, IsAllowedTimezone("Europe/Berlin"))
	assert.False(t, IsAllowedTimezone("america/chicago"))
	assert.False(t, IsAllowedTimezone(""))
}
