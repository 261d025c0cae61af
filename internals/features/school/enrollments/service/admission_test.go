// file: internals/features/school/enrollments/service/admission_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "schoolhub_backend/internals/helpers"
)

func TestCheckAdmission(t *testing.T) {
	cases := []struct {
		name           string
		maxStudents    int
		activeCount    int64
		duplicateCount int64
		want           error
	}{
		{"seat free", 25, 10, 0, nil},
		{"last seat", 25, 24, 0, nil},
		{"at capacity", 25, 25, 0, helper.ErrClassroomFull},
		{"over capacity", 25, 30, 0, helper.ErrClassroomFull},
		{"no declared capacity", 0, 500, 0, nil},
		{"duplicate active enrollment", 25, 10, 1, helper.ErrDuplicateActiveEnrollment},
		{"duplicate wins over full", 25, 25, 1, helper.ErrDuplicateActiveEnrollment},
		{"duplicate without capacity", 0, 0, 2, helper.ErrDuplicateActiveEnrollment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckAdmission(tc.maxStudents, tc.activeCount, tc.duplicateCount)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}
