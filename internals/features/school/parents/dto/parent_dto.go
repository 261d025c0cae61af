// file: internals/features/school/parents/dto/parent_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/parents/model"
)

type CreateParentRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"omitempty,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`

	RelationshipType       string `json:"relationship_type" validate:"required,min=1,max=20"`
	EmergencyContact       *bool  `json:"emergency_contact"`
	PickupAuthorized       *bool  `json:"pickup_authorized"`
	PreferredContactMethod string `json:"preferred_contact_method" validate:"omitempty,oneof=EMAIL PHONE TEXT email phone text"`
}

func (r *CreateParentRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.RelationshipType = strings.ToUpper(strings.TrimSpace(r.RelationshipType))
	r.PreferredContactMethod = strings.ToUpper(strings.TrimSpace(r.PreferredContactMethod))
	if r.PreferredContactMethod == "" {
		r.PreferredContactMethod = "EMAIL"
	}
}

type CreateRelationshipRequest struct {
	ParentID  uuid.UUID `json:"parent_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`

	RelationshipType string `json:"relationship_type" validate:"required,min=1,max=20"`
	CustodyStatus    string `json:"custody_status" validate:"omitempty,oneof=FULL JOINT RESTRICTED NONE full joint restricted none"`

	CanViewGrades       *bool `json:"can_view_grades"`
	CanViewAttendance   *bool `json:"can_view_attendance"`
	CanViewDiscipline   *bool `json:"can_view_discipline"`
	CanPickupStudent    *bool `json:"can_pickup_student"`
	CanAuthorizeMedical *bool `json:"can_authorize_medical"`

	IsEmergencyContact *bool `json:"is_emergency_contact"`
	EmergencyPriority  *int  `json:"emergency_priority" validate:"omitempty,min=1,max=10"`
}

func (r *CreateRelationshipRequest) Normalize() {
	r.RelationshipType = strings.ToUpper(strings.TrimSpace(r.RelationshipType))
	r.CustodyStatus = strings.ToUpper(strings.TrimSpace(r.CustodyStatus))
	if r.CustodyStatus == "" {
		r.CustodyStatus = "FULL"
	}
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func (r *CreateRelationshipRequest) ToModel() *model.ParentStudentRelationshipModel {
	priority := 1
	if r.EmergencyPriority != nil {
		priority = *r.EmergencyPriority
	}
	return &model.ParentStudentRelationshipModel{
		ParentStudentParentID:            r.ParentID,
		ParentStudentStudentID:           r.StudentID,
		ParentStudentRelationshipType:    r.RelationshipType,
		ParentStudentCustodyStatus:       r.CustodyStatus,
		ParentStudentCanViewGrades:       boolOr(r.CanViewGrades, true),
		ParentStudentCanViewAttendance:   boolOr(r.CanViewAttendance, true),
		ParentStudentCanViewDiscipline:   boolOr(r.CanViewDiscipline, true),
		ParentStudentCanPickupStudent:    boolOr(r.CanPickupStudent, true),
		ParentStudentCanAuthorizeMedical: boolOr(r.CanAuthorizeMedical, true),
		ParentStudentIsEmergencyContact:  boolOr(r.IsEmergencyContact, true),
		ParentStudentEmergencyPriority:   priority,
		ParentStudentIsActive:            true,
	}
}

/* =========================
   Read models
========================= */

type ParentWithUser struct {
	model.ParentModel
	FullName string `json:"full_name" gorm:"-"`
	Email    string `json:"email" gorm:"-"`
}

type RelationshipWithStudent struct {
	model.ParentStudentRelationshipModel
	StudentName string `json:"student_name" gorm:"-"`
	StudentCode string `json:"student_code" gorm:"-"`
}
