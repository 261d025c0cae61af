// file: internals/features/school/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default capacity for classrooms created by the homeroom auto-sync.
const DefaultMaxStudents = 25

type ClassroomModel struct {
	ClassroomID uuid.UUID `gorm:"column:classroom_id;type:uuid;default:gen_random_uuid();primaryKey" json:"classroom_id"`

	ClassroomName string `gorm:"column:classroom_name;type:varchar(255);not null" json:"classroom_name"`

	ClassroomSubjectID      uuid.UUID  `gorm:"column:classroom_subject_id;type:uuid;not null;index" json:"classroom_subject_id"`
	ClassroomAcademicYearID uuid.UUID  `gorm:"column:classroom_academic_year_id;type:uuid;not null;index" json:"classroom_academic_year_id"`
	ClassroomRoomID         *uuid.UUID `gorm:"column:classroom_room_id;type:uuid;index" json:"classroom_room_id,omitempty"`

	ClassroomGradeLevel string `gorm:"column:classroom_grade_level;type:varchar(10);not null;index" json:"classroom_grade_level"`
	// "CORE", "ENRICHMENT", "SPECIAL"
	ClassroomType string `gorm:"column:classroom_type;type:varchar(20);not null;default:CORE" json:"classroom_type"`

	// Zero means no declared capacity; the enrollment engine then skips the
	// capacity check.
	ClassroomMaxStudents int `gorm:"column:classroom_max_students;not null;default:25" json:"classroom_max_students"`

	ClassroomIsActive bool `gorm:"column:classroom_is_active;not null;default:true" json:"classroom_is_active"`

	ClassroomCreatedAt time.Time      `gorm:"column:classroom_created_at;autoCreateTime" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"column:classroom_updated_at;autoUpdateTime" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"-"`
}

func (ClassroomModel) TableName() string { return "classrooms" }
