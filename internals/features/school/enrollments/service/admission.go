// file: internals/features/school/enrollments/service/admission.go
package service

import (
	helper "schoolhub_backend/internals/helpers"
)

// CheckAdmission applies the seat decision to counts read under the
// classroom row lock. The duplicate check wins over the capacity check,
// and a max of zero means the classroom declares no capacity.
func CheckAdmission(maxStudents int, activeCount, duplicateCount int64) error {
	if duplicateCount > 0 {
		return helper.ErrDuplicateActiveEnrollment
	}
	if maxStudents > 0 && activeCount >= int64(maxStudents) {
		return helper.ErrClassroomFull
	}
	return nil
}
