// file: internals/features/school/classrooms/dto/classroom_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/classrooms/model"
)

type CreateClassroomRequest struct {
	ClassroomName           string     `json:"classroom_name" validate:"required,min=1,max=255"`
	ClassroomSubjectID      uuid.UUID  `json:"classroom_subject_id" validate:"required"`
	ClassroomAcademicYearID uuid.UUID  `json:"classroom_academic_year_id" validate:"required"`
	ClassroomRoomID         *uuid.UUID `json:"classroom_room_id"`
	ClassroomGradeLevel     string     `json:"classroom_grade_level" validate:"required,min=1,max=10"`
	ClassroomType           string     `json:"classroom_type" validate:"omitempty,max=20"`
	ClassroomMaxStudents    *int       `json:"classroom_max_students" validate:"omitempty,min=0,max=100"`
}

func (r *CreateClassroomRequest) Normalize() {
	r.ClassroomName = strings.TrimSpace(r.ClassroomName)
	r.ClassroomGradeLevel = strings.ToUpper(strings.TrimSpace(r.ClassroomGradeLevel))
	r.ClassroomType = strings.ToUpper(strings.TrimSpace(r.ClassroomType))
	if r.ClassroomType == "" {
		r.ClassroomType = "CORE"
	}
}

func (r *CreateClassroomRequest) ToModel() *model.ClassroomModel {
	maxStudents := model.DefaultMaxStudents
	if r.ClassroomMaxStudents != nil {
		maxStudents = *r.ClassroomMaxStudents
	}
	return &model.ClassroomModel{
		ClassroomName:           r.ClassroomName,
		ClassroomSubjectID:      r.ClassroomSubjectID,
		ClassroomAcademicYearID: r.ClassroomAcademicYearID,
		ClassroomRoomID:         r.ClassroomRoomID,
		ClassroomGradeLevel:     r.ClassroomGradeLevel,
		ClassroomType:           r.ClassroomType,
		ClassroomMaxStudents:    maxStudents,
		ClassroomIsActive:       true,
	}
}

// ClassroomRoomID is a *string rather than a *uuid.UUID so the three states
// survive the JSON round trip: absent keeps the current room, "" clears it,
// a uuid reassigns it.
type UpdateClassroomRequest struct {
	ClassroomName        *string `json:"classroom_name" validate:"omitempty,min=1,max=255"`
	ClassroomRoomID      *string `json:"classroom_room_id"`
	ClassroomGradeLevel  *string `json:"classroom_grade_level" validate:"omitempty,min=1,max=10"`
	ClassroomType        *string `json:"classroom_type" validate:"omitempty,max=20"`
	ClassroomMaxStudents *int    `json:"classroom_max_students" validate:"omitempty,min=0,max=100"`
	ClassroomIsActive    *bool   `json:"classroom_is_active"`
}

func (r *UpdateClassroomRequest) Normalize() {
	if r.ClassroomName != nil {
		v := strings.TrimSpace(*r.ClassroomName)
		r.ClassroomName = &v
	}
	if r.ClassroomGradeLevel != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.ClassroomGradeLevel))
		r.ClassroomGradeLevel = &v
	}
	if r.ClassroomType != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.ClassroomType))
		r.ClassroomType = &v
	}
}

// ApplyUpdates covers everything except the room, which the controller
// handles because clearing vs reassigning needs a lookup.
func (r *UpdateClassroomRequest) ApplyUpdates(m *model.ClassroomModel) {
	if r.ClassroomName != nil {
		m.ClassroomName = *r.ClassroomName
	}
	if r.ClassroomGradeLevel != nil {
		m.ClassroomGradeLevel = *r.ClassroomGradeLevel
	}
	if r.ClassroomType != nil {
		m.ClassroomType = *r.ClassroomType
	}
	if r.ClassroomMaxStudents != nil {
		m.ClassroomMaxStudents = *r.ClassroomMaxStudents
	}
	if r.ClassroomIsActive != nil {
		m.ClassroomIsActive = *r.ClassroomIsActive
	}
}

type CreateHomeroomRequest struct {
	TeacherID      uuid.UUID  `json:"teacher_id" validate:"required"`
	GradeLevel     string     `json:"grade_level" validate:"required,min=1,max=10"`
	AcademicYearID uuid.UUID  `json:"academic_year_id" validate:"required"`
	RoomID         *uuid.UUID `json:"room_id"`
	Name           string     `json:"name" validate:"omitempty,max=255"`
	MaxStudents    *int       `json:"max_students" validate:"omitempty,min=0,max=100"`
}

func (r *CreateHomeroomRequest) Normalize() {
	r.GradeLevel = strings.ToUpper(strings.TrimSpace(r.GradeLevel))
	r.Name = strings.TrimSpace(r.Name)
}

/* =========================
   Teacher assignments
========================= */

type CreateTeacherAssignmentRequest struct {
	TeacherUserID uuid.UUID  `json:"teacher_user_id" validate:"required"`
	RoleName      string     `json:"role_name" validate:"required,min=1,max=50"`
	StartDate     *time.Time `json:"start_date"`

	CanViewGrades        bool `json:"can_view_grades"`
	CanModifyGrades      bool `json:"can_modify_grades"`
	CanTakeAttendance    bool `json:"can_take_attendance"`
	CanViewParentContact bool `json:"can_view_parent_contact"`
	CanCreateAssignments bool `json:"can_create_assignments"`
}

func (r *CreateTeacherAssignmentRequest) Normalize() {
	r.RoleName = strings.TrimSpace(r.RoleName)
}

/* =========================
   Read models
========================= */

type TeacherAssignmentDetail struct {
	model.TeacherAssignmentModel
	TeacherName string `json:"teacher_name" gorm:"-"`
}

type ClassroomWithDetails struct {
	model.ClassroomModel
	SubjectName      string  `json:"subject_name" gorm:"-"`
	AcademicYearName string  `json:"academic_year_name" gorm:"-"`
	RoomName         *string `json:"room_name,omitempty" gorm:"-"`
	EnrollmentCount  int64   `json:"enrollment_count" gorm:"-"`
}
