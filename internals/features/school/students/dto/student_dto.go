// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/students/model"
)

/* =========================
   Requests
========================= */

type CreateStudentRequest struct {
	StudentSchoolID        uuid.UUID  `json:"student_school_id" validate:"required"`
	StudentCode            *string    `json:"student_code" validate:"omitempty,max=32"`
	StudentFirstName       string     `json:"student_first_name" validate:"required,min=1,max=50"`
	StudentLastName        string     `json:"student_last_name" validate:"required,min=1,max=50"`
	StudentEmail           *string    `json:"student_email" validate:"omitempty,email,max=100"`
	StudentDateOfBirth     *time.Time `json:"student_date_of_birth"`
	StudentEntryDate       *time.Time `json:"student_entry_date"`
	StudentEntryGradeLevel string     `json:"student_entry_grade_level" validate:"required,min=1,max=10"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentFirstName = strings.TrimSpace(r.StudentFirstName)
	r.StudentLastName = strings.TrimSpace(r.StudentLastName)
	r.StudentEntryGradeLevel = strings.ToUpper(strings.TrimSpace(r.StudentEntryGradeLevel))
	if r.StudentCode != nil {
		v := strings.TrimSpace(*r.StudentCode)
		r.StudentCode = &v
	}
	if r.StudentEmail != nil {
		v := strings.ToLower(strings.TrimSpace(*r.StudentEmail))
		r.StudentEmail = &v
	}
}

// ToModel assumes code has already been resolved (supplied or generated).
// Current grade always starts at the entry grade.
func (r *CreateStudentRequest) ToModel(code string) *model.StudentModel {
	return &model.StudentModel{
		StudentSchoolID:          r.StudentSchoolID,
		StudentCode:              code,
		StudentFirstName:         r.StudentFirstName,
		StudentLastName:          r.StudentLastName,
		StudentEmail:             r.StudentEmail,
		StudentDateOfBirth:       r.StudentDateOfBirth,
		StudentEntryDate:         r.StudentEntryDate,
		StudentEntryGradeLevel:   r.StudentEntryGradeLevel,
		StudentCurrentGradeLevel: r.StudentEntryGradeLevel,
		StudentIsActive:          true,
	}
}

type UpdateStudentRequest struct {
	StudentCode              *string    `json:"student_code" validate:"omitempty,max=32"`
	StudentFirstName         *string    `json:"student_first_name" validate:"omitempty,min=1,max=50"`
	StudentLastName          *string    `json:"student_last_name" validate:"omitempty,min=1,max=50"`
	StudentEmail             *string    `json:"student_email" validate:"omitempty,email,max=100"`
	StudentDateOfBirth       *time.Time `json:"student_date_of_birth"`
	StudentCurrentGradeLevel *string    `json:"student_current_grade_level" validate:"omitempty,min=1,max=10"`
	StudentIsActive          *bool      `json:"student_is_active"`
}

func (r *UpdateStudentRequest) Normalize() {
	if r.StudentCode != nil {
		v := strings.TrimSpace(*r.StudentCode)
		r.StudentCode = &v
	}
	if r.StudentFirstName != nil {
		v := strings.TrimSpace(*r.StudentFirstName)
		r.StudentFirstName = &v
	}
	if r.StudentLastName != nil {
		v := strings.TrimSpace(*r.StudentLastName)
		r.StudentLastName = &v
	}
	if r.StudentEmail != nil {
		v := strings.ToLower(strings.TrimSpace(*r.StudentEmail))
		r.StudentEmail = &v
	}
	if r.StudentCurrentGradeLevel != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.StudentCurrentGradeLevel))
		r.StudentCurrentGradeLevel = &v
	}
}

func (r *UpdateStudentRequest) ApplyUpdates(m *model.StudentModel) {
	if r.StudentCode != nil {
		m.StudentCode = *r.StudentCode
	}
	if r.StudentFirstName != nil {
		m.StudentFirstName = *r.StudentFirstName
	}
	if r.StudentLastName != nil {
		m.StudentLastName = *r.StudentLastName
	}
	if r.StudentEmail != nil {
		m.StudentEmail = r.StudentEmail
	}
	if r.StudentDateOfBirth != nil {
		m.StudentDateOfBirth = r.StudentDateOfBirth
	}
	if r.StudentCurrentGradeLevel != nil {
		m.StudentCurrentGradeLevel = *r.StudentCurrentGradeLevel
	}
	if r.StudentIsActive != nil {
		m.StudentIsActive = *r.StudentIsActive
	}
}

type BulkPromoteRequest struct {
	TargetAcademicYearID uuid.UUID `json:"target_academic_year_id" validate:"required"`
	GradeFilter          *string   `json:"grade_filter" validate:"omitempty,min=1,max=10"`
}

func (r *BulkPromoteRequest) Normalize() {
	if r.GradeFilter != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.GradeFilter))
		r.GradeFilter = &v
	}
}

/* =========================
   Responses
========================= */

type PromoteResponse struct {
	StudentID    uuid.UUID `json:"student_id"`
	FromGrade    string    `json:"from_grade"`
	ToGrade      string    `json:"to_grade"`
	Outcome      string    `json:"outcome"` // promoted | graduated | held_back
	StudentState bool      `json:"student_is_active"`
}

type BulkPromoteResponse struct {
	PromotedCount  int      `json:"promoted_count"`
	GraduatedNames []string `json:"graduated_names"`
	HeldBackNames  []string `json:"held_back_names"`
}
