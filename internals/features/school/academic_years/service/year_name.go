// file: internals/features/school/academic_years/service/year_name.go
package service

import (
	"regexp"
	"strconv"
	"strings"

	helper "schoolhub_backend/internals/helpers"
)

var yearNameRe = regexp.MustCompile(`^(\d{4})-(\d{4})$`)

// ValidateYearName checks the "YYYY-YYYY" shape and that the second year
// directly follows the first.
func ValidateYearName(name string) error {
	m := yearNameRe.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return helper.ErrInvalidNameFormat
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	if second != first+1 {
		return helper.ErrInvalidNameFormat
	}
	return nil
}

// ShortName derives the display short name: "2024-2025" -> "24-25".
// Anything else falls back to the first five characters.
func ShortName(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, "-") {
		years := strings.Split(name, "-")
		if len(years) == 2 && len(years[0]) == 4 && len(years[1]) == 4 {
			return years[0][2:] + "-" + years[1][2:]
		}
	}
	if len(name) > 5 {
		return name[:5]
	}
	return name
}
