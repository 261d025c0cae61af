// file: internals/features/school/students/model/student_academic_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Promotion status values stored on academic records.
const (
	PromotionStatusEnrolled    = "enrolled"
	PromotionStatusPromoted    = "promoted"
	PromotionStatusRetained    = "retained"
	PromotionStatusSkipped     = "skipped"
	PromotionStatusTransferred = "transferred"
	PromotionStatusGraduated   = "graduated"
)

// One row per student per academic year; the full academic history.
type StudentAcademicRecordModel struct {
	StudentAcademicRecordID uuid.UUID `gorm:"column:student_academic_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_academic_record_id"`

	StudentAcademicRecordStudentID      uuid.UUID `gorm:"column:student_academic_record_student_id;type:uuid;not null;index" json:"student_academic_record_student_id"`
	StudentAcademicRecordAcademicYearID uuid.UUID `gorm:"column:student_academic_record_academic_year_id;type:uuid;not null;index" json:"student_academic_record_academic_year_id"`
	StudentAcademicRecordSchoolID       uuid.UUID `gorm:"column:student_academic_record_school_id;type:uuid;not null" json:"student_academic_record_school_id"`

	// "PS", "PK", "K", "1".."8", "SPED", "UNGRADED"
	StudentAcademicRecordGradeLevel      string `gorm:"column:student_academic_record_grade_level;type:varchar(10);not null" json:"student_academic_record_grade_level"`
	StudentAcademicRecordProgramType     string `gorm:"column:student_academic_record_program_type;type:varchar(20);not null;default:GENERAL" json:"student_academic_record_program_type"`
	StudentAcademicRecordPromotionStatus string `gorm:"column:student_academic_record_promotion_status;type:varchar(20);not null" json:"student_academic_record_promotion_status"`

	StudentAcademicRecordFinalGPA       *float64 `gorm:"column:student_academic_record_final_gpa" json:"student_academic_record_final_gpa,omitempty"`
	StudentAcademicRecordAttendanceRate *float64 `gorm:"column:student_academic_record_attendance_rate" json:"student_academic_record_attendance_rate,omitempty"`
	StudentAcademicRecordCreditsEarned  *float64 `gorm:"column:student_academic_record_credits_earned" json:"student_academic_record_credits_earned,omitempty"`

	StudentAcademicRecordEnrollmentDate   time.Time  `gorm:"column:student_academic_record_enrollment_date;type:date;not null" json:"student_academic_record_enrollment_date"`
	StudentAcademicRecordWithdrawalDate   *time.Time `gorm:"column:student_academic_record_withdrawal_date;type:date" json:"student_academic_record_withdrawal_date,omitempty"`
	StudentAcademicRecordWithdrawalReason *string    `gorm:"column:student_academic_record_withdrawal_reason;type:varchar(50)" json:"student_academic_record_withdrawal_reason,omitempty"`

	StudentAcademicRecordIsActive bool `gorm:"column:student_academic_record_is_active;not null;default:true" json:"student_academic_record_is_active"`

	StudentAcademicRecordCreatedAt time.Time      `gorm:"column:student_academic_record_created_at;autoCreateTime" json:"student_academic_record_created_at"`
	StudentAcademicRecordUpdatedAt time.Time      `gorm:"column:student_academic_record_updated_at;autoUpdateTime" json:"student_academic_record_updated_at"`
	StudentAcademicRecordDeletedAt gorm.DeletedAt `gorm:"column:student_academic_record_deleted_at;index" json:"-"`
}

func (StudentAcademicRecordModel) TableName() string { return "student_academic_records" }
