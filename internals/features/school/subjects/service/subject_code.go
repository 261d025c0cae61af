// file: internals/features/school/subjects/service/subject_code.go
package service

import (
	"errors"
	"strings"
)

var ErrInvalidSubjectCode = errors.New("subject code must contain only letters, digits and spaces")

// NormalizeCode upper-cases a subject code and replaces inner spaces with
// underscores: "soc studies" -> "SOC_STUDIES". Anything outside [A-Z0-9_]
// after normalization is rejected.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, " ", "_")
	if code == "" {
		return "", ErrInvalidSubjectCode
	}
	for _, ch := range code {
		switch {
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '_':
		default:
			return "", ErrInvalidSubjectCode
		}
	}
	return code, nil
}
