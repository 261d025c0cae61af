// file: internals/features/school/classrooms/model/teacher_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role labels used by the built-in creation paths.
const (
	RoleHomeroomTeacher = "Homeroom Teacher"
	RolePrimaryTeacher  = "Primary Teacher"
)

// Links a teacher to a classroom, time-boxed by start/end date.
type TeacherAssignmentModel struct {
	TeacherAssignmentID uuid.UUID `gorm:"column:teacher_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_assignment_id"`

	TeacherAssignmentClassroomID   uuid.UUID `gorm:"column:teacher_assignment_classroom_id;type:uuid;not null;index" json:"teacher_assignment_classroom_id"`
	TeacherAssignmentTeacherUserID uuid.UUID `gorm:"column:teacher_assignment_teacher_user_id;type:uuid;not null;index" json:"teacher_assignment_teacher_user_id"`

	TeacherAssignmentRoleName string `gorm:"column:teacher_assignment_role_name;type:varchar(50);not null" json:"teacher_assignment_role_name"`

	TeacherAssignmentCanViewGrades        bool `gorm:"column:teacher_assignment_can_view_grades;not null;default:false" json:"teacher_assignment_can_view_grades"`
	TeacherAssignmentCanModifyGrades      bool `gorm:"column:teacher_assignment_can_modify_grades;not null;default:false" json:"teacher_assignment_can_modify_grades"`
	TeacherAssignmentCanTakeAttendance    bool `gorm:"column:teacher_assignment_can_take_attendance;not null;default:false" json:"teacher_assignment_can_take_attendance"`
	TeacherAssignmentCanViewParentContact bool `gorm:"column:teacher_assignment_can_view_parent_contact;not null;default:false" json:"teacher_assignment_can_view_parent_contact"`
	TeacherAssignmentCanCreateAssignments bool `gorm:"column:teacher_assignment_can_create_assignments;not null;default:false" json:"teacher_assignment_can_create_assignments"`

	TeacherAssignmentStartDate *time.Time `gorm:"column:teacher_assignment_start_date;type:date" json:"teacher_assignment_start_date,omitempty"`
	TeacherAssignmentEndDate   *time.Time `gorm:"column:teacher_assignment_end_date;type:date" json:"teacher_assignment_end_date,omitempty"`

	TeacherAssignmentIsActive bool `gorm:"column:teacher_assignment_is_active;not null;default:true" json:"teacher_assignment_is_active"`

	TeacherAssignmentCreatedAt time.Time      `gorm:"column:teacher_assignment_created_at;autoCreateTime" json:"teacher_assignment_created_at"`
	TeacherAssignmentUpdatedAt time.Time      `gorm:"column:teacher_assignment_updated_at;autoUpdateTime" json:"teacher_assignment_updated_at"`
	TeacherAssignmentDeletedAt gorm.DeletedAt `gorm:"column:teacher_assignment_deleted_at;index" json:"-"`
}

func (TeacherAssignmentModel) TableName() string { return "classroom_teacher_assignments" }

// FullDefaultPermissions applies the permission set granted by the homeroom
// and auto-sync creation paths.
func (t *TeacherAssignmentModel) FullDefaultPermissions() {
	t.TeacherAssignmentCanViewGrades = true
	t.TeacherAssignmentCanModifyGrades = true
	t.TeacherAssignmentCanTakeAttendance = true
	t.TeacherAssignmentCanViewParentContact = true
	t.TeacherAssignmentCanCreateAssignments = true
}
