// file: internals/features/school/students/service/student_id.go
package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	idWidthDefault = 4
	// First number handed out when a school has no IDs yet (SPR1001, ...).
	idSeedNumber = 1001
)

var (
	alphaPrefixRe = regexp.MustCompile(`^[A-Za-z]+`)
	numSuffixRe   = regexp.MustCompile(`(\d+)$`)
	nonLetterRe   = regexp.MustCompile(`[^A-Za-z]`)
)

// NextStudentID computes the next human-readable student ID for a school:
// the alphabetic prefix and zero-padding width of the highest numbered
// existing ID are preserved and the number incremented. With no usable IDs
// the prefix is derived from the school name (first three letters, upper
// case, "STD" fallback) and numbering starts at 1001.
//
// IDs are only unique within one school, not globally.
func NextStudentID(existingIDs []string, schoolName string) string {
	maxNum := 0
	pad := idWidthDefault
	prefix := ""

	for _, sid := range existingIDs {
		sid = strings.TrimSpace(sid)
		if sid == "" {
			continue
		}
		pfx := alphaPrefixRe.FindString(sid)
		if num := numSuffixRe.FindString(sid); num != "" {
			n, _ := strconv.Atoi(num)
			if n > maxNum {
				maxNum = n
				pad = len(num)
				if pfx != "" {
					prefix = pfx
				}
			}
		} else if pfx != "" && prefix == "" {
			prefix = pfx
		}
	}

	if prefix == "" {
		prefix = derivePrefix(schoolName)
	}

	next := maxNum + 1
	if maxNum == 0 {
		next = idSeedNumber
	}
	return fmt.Sprintf("%s%0*d", prefix, pad, next)
}

func derivePrefix(schoolName string) string {
	letters := strings.ToUpper(nonLetterRe.ReplaceAllString(schoolName, ""))
	if len(letters) >= 3 {
		return letters[:3]
	}
	if letters != "" {
		return letters
	}
	return "STD"
}
