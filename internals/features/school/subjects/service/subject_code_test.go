// file: internals/features/school/subjects/service/subject_code_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	cases := map[string]string{
		"math":        "MATH",
		"soc studies": "SOC_STUDIES",
		"  art  ":     "ART",
		"GYM_2":       "GYM_2",
	}
	for in, want := range cases {
		got, err := NormalizeCode(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNormalizeCode_RejectsInvalidCharacters(t *testing.T) {
	for _, in := range []string{"", "   ", "math!", "sci-1", "a.b", "ümlaut"} {
		_, err := NormalizeCode(in)
		assert.ErrorIs(t, err, ErrInvalidSubjectCode, in)
	}
}
