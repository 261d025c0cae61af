// file: internals/features/school/students/service/promotion_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromoteGrade_Progression(t *testing.T) {
	cases := []struct {
		current string
		next    string
	}{
		{"PK", "K"},
		{"K", "1"},
		{"1", "2"},
		{"2", "3"},
		{"3", "4"},
		{"4", "5"},
		{"5", "6"},
		{"6", "7"},
		{"7", "8"},
	}
	for _, tc := range cases {
		next, outcome := PromoteGrade(tc.current)
		assert.Equal(t, tc.next, next, "from %s", tc.current)
		assert.Equal(t, OutcomePromoted, outcome, "from %s", tc.current)
	}
}

func TestPromoteGrade_GraduatesFromEighth(t *testing.T) {
	next, outcome := PromoteGrade("8")
	assert.Equal(t, "GRADUATED", next)
	assert.Equal(t, OutcomeGraduated, outcome)
}

func TestPromoteGrade_UnknownGradeIsHeldBack(t *testing.T) {
	for _, g := range []string{"SPED", "UNGRADED", "MULTI", "GRADUATED", ""} {
		next, outcome := PromoteGrade(g)
		assert.Equal(t, g, next, "grade %q must not change", g)
		assert.Equal(t, OutcomeHeldBack, outcome)
	}
}
