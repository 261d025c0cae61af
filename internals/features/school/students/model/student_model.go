// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index" json:"student_school_id"`

	// Human-readable ID like SPR1001, unique per school.
	StudentCode string `gorm:"column:student_code;type:varchar(32);index:idx_students_school_code,unique,where:student_deleted_at IS NULL" json:"student_code"`

	StudentFirstName string  `gorm:"column:student_first_name;type:varchar(50);not null" json:"student_first_name"`
	StudentLastName  string  `gorm:"column:student_last_name;type:varchar(50);not null" json:"student_last_name"`
	StudentEmail     *string `gorm:"column:student_email;type:varchar(100)" json:"student_email,omitempty"`

	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth;type:date" json:"student_date_of_birth,omitempty"`

	// Entry information is historical and never changes after creation.
	StudentEntryDate       *time.Time `gorm:"column:student_entry_date;type:date" json:"student_entry_date,omitempty"`
	StudentEntryGradeLevel string     `gorm:"column:student_entry_grade_level;type:varchar(10);not null" json:"student_entry_grade_level"`

	// Updated only through the promotion workflow.
	StudentCurrentGradeLevel string `gorm:"column:student_current_grade_level;type:varchar(10);not null" json:"student_current_grade_level"`

	StudentIsActive bool `gorm:"column:student_is_active;not null;default:true" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) FullName() string {
	return s.StudentFirstName + " " + s.StudentLastName
}
