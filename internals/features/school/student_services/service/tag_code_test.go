// file: internals/features/school/student_services/service/tag_code_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTagCode(t *testing.T) {
	assert.Equal(t, "READING_SUPPORT", DeriveTagCode("Reading Support"))
	assert.Equal(t, "SPEECH", DeriveTagCode("  speech "))
	assert.Equal(t, "A_VERY_LONG_TAG_NAME", DeriveTagCode("A Very Long Tag Name That Keeps Going"))
	assert.Len(t, DeriveTagCode("A Very Long Tag Name That Keeps Going"), 20)
}
