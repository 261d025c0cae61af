// file: internals/features/school/students/service/promotion.go
package service

import "schoolhub_backend/internals/constants"

type PromoteOutcome int

const (
	// Grade moved forward one step in the progression table.
	OutcomePromoted PromoteOutcome = iota
	// Grade reached GRADUATED; the student must also be deactivated.
	OutcomeGraduated
	// Grade is outside the progression table (SPED, UNGRADED, ...); no-op.
	OutcomeHeldBack
)

// PromoteGrade computes the promotion step for a current grade. Pure function
// so the transition can be applied inside whatever transaction the caller
// holds.
func PromoteGrade(current string) (string, PromoteOutcome) {
	next, ok := constants.NextGrade(current)
	if !ok {
		return current, OutcomeHeldBack
	}
	if next == constants.GradeGraduated {
		return next, OutcomeGraduated
	}
	return next, OutcomePromoted
}
