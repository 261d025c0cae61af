// file: internals/helpers/errors_test.go
package helper

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// domainStatus runs JsonDomainError through a real fiber handler and reports
// the status code it produced.
func domainStatus(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return JsonDomainError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestJsonDomainError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrNotFound, fiber.StatusNotFound},
		{gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{ErrNoActiveYear, fiber.StatusNotFound},
		{ErrForbidden, fiber.StatusForbidden},
		{ErrDuplicateActiveEnrollment, fiber.StatusConflict},
		{ErrClassroomFull, fiber.StatusConflict},
		{ErrDuplicateStudentID, fiber.StatusConflict},
		{ErrDuplicateName, fiber.StatusConflict},
		{ErrDuplicateCode, fiber.StatusConflict},
		{ErrInvalidDateRange, fiber.StatusBadRequest},
		{ErrInvalidNameFormat, fiber.StatusBadRequest},
		{ErrInvalidTransition, fiber.StatusBadRequest},
		{ErrCannotDeleteSystemCore, fiber.StatusBadRequest},
		{ErrRoomInUse, fiber.StatusBadRequest},
		{ErrNoCoreSubject, fiber.StatusBadRequest},
		{ErrInvalidPreference, fiber.StatusBadRequest},
		{assertableError("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, domainStatus(t, tc.err), tc.err.Error())
	}
}

func TestJsonDomainError_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("create enrollment: %w", ErrClassroomFull)
	assert.Equal(t, fiber.StatusConflict, domainStatus(t, wrapped))
}

type assertableError string

func (e assertableError) Error() string { return string(e) }

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(assertableError("nope")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, IsForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(nil))
}
