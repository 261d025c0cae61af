// file: internals/features/school/students/service/student_id_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStudentID_IncrementsHighestNumber(t *testing.T) {
	got := NextStudentID([]string{"SPR1001", "SPR1002"}, "Springfield Elementary")
	assert.Equal(t, "SPR1003", got)
}

func TestNextStudentID_EmptySetSeedsFromSchoolName(t *testing.T) {
	got := NextStudentID(nil, "Springfield Elementary")
	assert.Equal(t, "SPR1001", got)
}

func TestNextStudentID_PreservesPaddingWidth(t *testing.T) {
	got := NextStudentID([]string{"LIN000042"}, "Lincoln Middle")
	assert.Equal(t, "LIN000043", got)
}

func TestNextStudentID_PrefixFollowsHighestNumberedID(t *testing.T) {
	// OLD is numerically behind, so the NEW prefix wins.
	got := NextStudentID([]string{"OLD0005", "NEW0009"}, "Lincoln Middle")
	assert.Equal(t, "NEW0010", got)
}

func TestNextStudentID_FallbackPrefix(t *testing.T) {
	assert.Equal(t, "STD1001", NextStudentID(nil, "123"))
	assert.Equal(t, "STD1001", NextStudentID(nil, ""))
	// Short names keep what letters they have.
	assert.Equal(t, "AB1001", NextStudentID(nil, "A B"))
}

func TestNextStudentID_IgnoresBlankAndNonNumericEntries(t *testing.T) {
	got := NextStudentID([]string{"", "  ", "LEGACY", "SPR1004"}, "Springfield Elementary")
	assert.Equal(t, "SPR1005", got)
}
