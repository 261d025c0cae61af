// file: internals/helpers/errors.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ===============================
   Domain errors
=================================*/

// Sentinel errors shared by services and controllers. Controllers turn them
// into the standard error envelope via JsonDomainError.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrNoActiveYear = errors.New("no active academic year")
	ErrForbidden    = errors.New("insufficient permissions")

	ErrDuplicateActiveEnrollment = errors.New("student already has an active enrollment in this classroom")
	ErrClassroomFull             = errors.New("classroom is at capacity")
	ErrDuplicateStudentID        = errors.New("student id already exists")
	ErrDuplicateName             = errors.New("name already in use")
	ErrDuplicateCode             = errors.New("code already in use")

	ErrInvalidDateRange       = errors.New("start date must be before end date")
	ErrInvalidNameFormat      = errors.New("name must look like YYYY-YYYY with consecutive years")
	ErrInvalidTransition      = errors.New("invalid enrollment status transition")
	ErrCannotDeleteSystemCore = errors.New("system core subject cannot be deleted")
	ErrRoomInUse              = errors.New("room is still referenced by classrooms")
	ErrNoCoreSubject          = errors.New("no core homeroom subject configured")
	ErrInvalidPreference      = errors.New("invalid preference value")
)

// JsonDomainError maps a sentinel (or wrapped sentinel) to its HTTP status.
// Unknown errors become a 500 without leaking internals.
func JsonDomainError(c *fiber.Ctx, err error) error {
	switch {
	case err == nil:
		return JsonOK(c, "", nil)
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return JsonError(c, fiber.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrNoActiveYear):
		return JsonError(c, fiber.StatusNotFound, ErrNoActiveYear.Error())
	case errors.Is(err, ErrForbidden):
		return JsonError(c, fiber.StatusForbidden, ErrForbidden.Error())
	case errors.Is(err, ErrDuplicateActiveEnrollment),
		errors.Is(err, ErrClassroomFull),
		errors.Is(err, ErrDuplicateStudentID),
		errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrDuplicateCode):
		return JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidNameFormat),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrCannotDeleteSystemCore),
		errors.Is(err, ErrRoomInUse),
		errors.Is(err, ErrNoCoreSubject),
		errors.Is(err, ErrInvalidPreference):
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

/* ===============================
   Postgres error classification
=================================*/

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505). Used as the backstop behind the proactive
// duplicate checks, which can still lose a race between transactions.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// IsForeignKeyViolation reports SQLSTATE 23503 (restricted delete etc).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}
