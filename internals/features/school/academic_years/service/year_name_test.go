// file: internals/features/school/academic_years/service/year_name_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "schoolhub_backend/internals/helpers"
)

func TestValidateYearName(t *testing.T) {
	assert.NoError(t, ValidateYearName("2024-2025"))
	assert.NoError(t, ValidateYearName(" 2030-2031 "))

	for _, name := range []string{
		"2024-2026", // gap
		"2025-2024", // reversed
		"2024/2025",
		"24-25",
		"2024-2025 ",
		"abcd-efgh",
		"",
	} {
		err := ValidateYearName(name)
		if name == "2024-2025 " {
			// Trailing space is trimmed before matching.
			assert.NoError(t, err, name)
			continue
		}
		assert.ErrorIs(t, err, helper.ErrInvalidNameFormat, name)
	}
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "24-25", ShortName("2024-2025"))
	assert.Equal(t, "99-00", ShortName("2099-2100"))
	// Anything unusual falls back to the first five characters.
	assert.Equal(t, "Sprin", ShortName("Springfield"))
	assert.Equal(t, "abc", ShortName("abc"))
}
