// file: internals/features/school/parents/model/parent_student_relationship_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Per-student permission grid for a parent. Emergency priority 1 is the
// first number the office calls.
type ParentStudentRelationshipModel struct {
	ParentStudentID uuid.UUID `gorm:"column:parent_student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"parent_student_id"`

	ParentStudentParentID  uuid.UUID `gorm:"column:parent_student_parent_id;type:uuid;not null;index" json:"parent_student_parent_id"`
	ParentStudentStudentID uuid.UUID `gorm:"column:parent_student_student_id;type:uuid;not null;index" json:"parent_student_student_id"`

	// "MOTHER", "FATHER", "GUARDIAN", "STEPPARENT"
	ParentStudentRelationshipType string `gorm:"column:parent_student_relationship_type;type:varchar(20);not null" json:"parent_student_relationship_type"`
	// "FULL", "JOINT", "RESTRICTED", "NONE"
	ParentStudentCustodyStatus string `gorm:"column:parent_student_custody_status;type:varchar(20);not null;default:FULL" json:"parent_student_custody_status"`

	ParentStudentCanViewGrades       bool `gorm:"column:parent_student_can_view_grades;not null;default:true" json:"parent_student_can_view_grades"`
	ParentStudentCanViewAttendance   bool `gorm:"column:parent_student_can_view_attendance;not null;default:true" json:"parent_student_can_view_attendance"`
	ParentStudentCanViewDiscipline   bool `gorm:"column:parent_student_can_view_discipline;not null;default:true" json:"parent_student_can_view_discipline"`
	ParentStudentCanPickupStudent    bool `gorm:"column:parent_student_can_pickup_student;not null;default:true" json:"parent_student_can_pickup_student"`
	ParentStudentCanAuthorizeMedical bool `gorm:"column:parent_student_can_authorize_medical;not null;default:true" json:"parent_student_can_authorize_medical"`

	ParentStudentIsEmergencyContact bool `gorm:"column:parent_student_is_emergency_contact;not null;default:true" json:"parent_student_is_emergency_contact"`
	ParentStudentEmergencyPriority  int  `gorm:"column:parent_student_emergency_priority;not null;default:1" json:"parent_student_emergency_priority"`

	ParentStudentIsActive bool `gorm:"column:parent_student_is_active;not null;default:true" json:"parent_student_is_active"`

	ParentStudentCreatedAt time.Time      `gorm:"column:parent_student_created_at;autoCreateTime" json:"parent_student_created_at"`
	ParentStudentUpdatedAt time.Time      `gorm:"column:parent_student_updated_at;autoUpdateTime" json:"parent_student_updated_at"`
	ParentStudentDeletedAt gorm.DeletedAt `gorm:"column:parent_student_deleted_at;index" json:"-"`
}

func (ParentStudentRelationshipModel) TableName() string { return "parent_student_relationships" }
