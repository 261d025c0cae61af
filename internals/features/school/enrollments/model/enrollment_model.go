// file: internals/features/school/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive    = "ACTIVE"
	StatusWithdrawn = "WITHDRAWN"
)

// One active enrollment per (student, classroom). Backstopped by a partial
// unique index:
//   CREATE UNIQUE INDEX uq_enrollments_student_classroom_active
//   ON enrollments (enrollment_student_id, enrollment_classroom_id)
//   WHERE enrollment_is_active;
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	EnrollmentStudentID      uuid.UUID  `gorm:"column:enrollment_student_id;type:uuid;not null;index" json:"enrollment_student_id"`
	EnrollmentClassroomID    uuid.UUID  `gorm:"column:enrollment_classroom_id;type:uuid;not null;index" json:"enrollment_classroom_id"`
	EnrollmentAcademicYearID *uuid.UUID `gorm:"column:enrollment_academic_year_id;type:uuid;index" json:"enrollment_academic_year_id,omitempty"`

	// Grade level at the time of this enrollment, not the student's current
	// grade. "PK", "K", "1".."8", "MULTI", "SPED", "UNGRADED".
	EnrollmentGradeLevel string `gorm:"column:enrollment_grade_level;type:varchar(10);not null" json:"enrollment_grade_level"`

	EnrollmentDate           time.Time  `gorm:"column:enrollment_date;type:date;not null" json:"enrollment_date"`
	EnrollmentWithdrawalDate *time.Time `gorm:"column:enrollment_withdrawal_date;type:date" json:"enrollment_withdrawal_date,omitempty"`

	EnrollmentStatus   string `gorm:"column:enrollment_status;type:varchar(20);not null;default:ACTIVE" json:"enrollment_status"`
	EnrollmentIsActive bool   `gorm:"column:enrollment_is_active;not null;default:true" json:"enrollment_is_active"`

	EnrollmentWithdrawalReason *string `gorm:"column:enrollment_withdrawal_reason;type:varchar(100)" json:"enrollment_withdrawal_reason,omitempty"`

	EnrollmentIsAuditOnly           bool `gorm:"column:enrollment_is_audit_only;not null;default:false" json:"enrollment_is_audit_only"`
	EnrollmentRequiresAccommodation bool `gorm:"column:enrollment_requires_accommodation;not null;default:false" json:"enrollment_requires_accommodation"`

	EnrollmentEnrolledBy *uuid.UUID `gorm:"column:enrollment_enrolled_by;type:uuid" json:"enrollment_enrolled_by,omitempty"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"-"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) IsWithdrawn() bool {
	return m.EnrollmentStatus == StatusWithdrawn
}

// Withdraw marks the enrollment withdrawn and deactivates it. An already
// stamped withdrawal date is kept when none is supplied.
func (m *EnrollmentModel) Withdraw(date *time.Time, reason *string) {
	m.EnrollmentStatus = StatusWithdrawn
	m.EnrollmentIsActive = false
	if date != nil {
		m.EnrollmentWithdrawalDate = date
	} else if m.EnrollmentWithdrawalDate == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		m.EnrollmentWithdrawalDate = &today
	}
	if reason != nil {
		m.EnrollmentWithdrawalReason = reason
	}
}

// Reactivate returns a withdrawn enrollment to ACTIVE and clears the
// withdrawal fields. Reports whether anything changed; any status other
// than WITHDRAWN is left untouched.
func (m *EnrollmentModel) Reactivate() bool {
	if !m.IsWithdrawn() {
		return false
	}
	m.EnrollmentStatus = StatusActive
	m.EnrollmentIsActive = true
	m.EnrollmentWithdrawalDate = nil
	m.EnrollmentWithdrawalReason = nil
	return true
}
