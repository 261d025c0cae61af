// file: internals/features/school/student_services/service/tag_code.go
package service

import "strings"

const maxTagCodeLen = 20

// DeriveTagCode builds a stable short code from a display name:
// "Reading Support" -> "READING_SUPPORT", truncated to 20 characters.
func DeriveTagCode(name string) string {
	code := strings.ToUpper(strings.TrimSpace(name))
	code = strings.ReplaceAll(code, " ", "_")
	if len(code) > maxTagCodeLen {
		code = code[:maxTagCodeLen]
	}
	return code
}
