// file: internals/features/school/enrollments/dto/enrollment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/enrollments/model"
)

type CreateEnrollmentRequest struct {
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	ClassroomID uuid.UUID `json:"classroom_id" validate:"required"`
	GradeLevel  string    `json:"grade_level" validate:"required,oneof=PK K 1 2 3 4 5 6 7 8 MULTI SPED UNGRADED"`

	EnrollmentDate   *time.Time `json:"enrollment_date"`
	EnrollmentStatus string     `json:"enrollment_status" validate:"omitempty,max=20"`

	IsAuditOnly           bool `json:"is_audit_only"`
	RequiresAccommodation bool `json:"requires_accommodation"`
}

func (r *CreateEnrollmentRequest) Normalize() {
	r.GradeLevel = strings.ToUpper(strings.TrimSpace(r.GradeLevel))
	r.EnrollmentStatus = strings.ToUpper(strings.TrimSpace(r.EnrollmentStatus))
	if r.EnrollmentStatus == "" {
		r.EnrollmentStatus = model.StatusActive
	}
}

type UpdateEnrollmentRequest struct {
	GradeLevel            *string    `json:"grade_level" validate:"omitempty,oneof=PK K 1 2 3 4 5 6 7 8 MULTI SPED UNGRADED"`
	EnrollmentStatus      *string    `json:"enrollment_status" validate:"omitempty,max=20"`
	WithdrawalDate        *time.Time `json:"withdrawal_date"`
	WithdrawalReason      *string    `json:"withdrawal_reason" validate:"omitempty,max=100"`
	IsAuditOnly           *bool      `json:"is_audit_only"`
	RequiresAccommodation *bool      `json:"requires_accommodation"`
}

func (r *UpdateEnrollmentRequest) Normalize() {
	if r.GradeLevel != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.GradeLevel))
		r.GradeLevel = &v
	}
	if r.EnrollmentStatus != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.EnrollmentStatus))
		r.EnrollmentStatus = &v
	}
	if r.WithdrawalReason != nil {
		v := strings.TrimSpace(*r.WithdrawalReason)
		r.WithdrawalReason = &v
	}
}

func (r *UpdateEnrollmentRequest) ApplyUpdates(m *model.EnrollmentModel) {
	if r.GradeLevel != nil {
		m.EnrollmentGradeLevel = *r.GradeLevel
	}
	if r.EnrollmentStatus != nil {
		m.EnrollmentStatus = *r.EnrollmentStatus
	}
	if r.WithdrawalDate != nil {
		m.EnrollmentWithdrawalDate = r.WithdrawalDate
	}
	if r.WithdrawalReason != nil {
		m.EnrollmentWithdrawalReason = r.WithdrawalReason
	}
	if r.IsAuditOnly != nil {
		m.EnrollmentIsAuditOnly = *r.IsAuditOnly
	}
	if r.RequiresAccommodation != nil {
		m.EnrollmentRequiresAccommodation = *r.RequiresAccommodation
	}
}

type WithdrawRequest struct {
	WithdrawalDate   *time.Time `json:"withdrawal_date"`
	WithdrawalReason *string    `json:"withdrawal_reason" validate:"omitempty,max=100"`
}

/* =========================
   Read models
========================= */

type EnrollmentWithDetails struct {
	model.EnrollmentModel
	StudentName   string `json:"student_name" gorm:"-"`
	ClassroomName string `json:"classroom_name" gorm:"-"`
}

type RosterStudent struct {
	StudentID         uuid.UUID `json:"student_id"`
	StudentCode       string    `json:"student_code"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	CurrentGradeLevel string    `json:"current_grade_level"`

	EnrollmentID          uuid.UUID `json:"enrollment_id"`
	EnrollmentDate        time.Time `json:"enrollment_date"`
	EnrollmentStatus      string    `json:"enrollment_status"`
	IsActive              bool      `json:"is_active"`
	RequiresAccommodation bool      `json:"requires_accommodation"`
}
