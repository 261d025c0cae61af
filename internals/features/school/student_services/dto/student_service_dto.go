// file: internals/features/school/student_services/dto/student_service_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateTagRequest struct {
	TagName     string     `json:"tag_name" validate:"required,min=1,max=50"`
	Description *string    `json:"description" validate:"omitempty,max=200"`
	SchoolID    *uuid.UUID `json:"school_id"`
}

func (r *CreateTagRequest) Normalize() {
	r.TagName = strings.TrimSpace(r.TagName)
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

type UpdateTagRequest struct {
	TagName     *string `json:"tag_name" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

func (r *UpdateTagRequest) Normalize() {
	if r.TagName != nil {
		v := strings.TrimSpace(*r.TagName)
		r.TagName = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

type AssignNeedRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	TagID     uuid.UUID `json:"tag_id" validate:"required"`

	SeverityLevel *string `json:"severity_level" validate:"omitempty,oneof=MILD MODERATE INTENSIVE mild moderate intensive"`
	Notes         *string `json:"notes" validate:"omitempty,max=500"`

	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	ReviewDate *time.Time `json:"review_date"`
}

func (r *AssignNeedRequest) Normalize() {
	if r.SeverityLevel != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.SeverityLevel))
		r.SeverityLevel = &v
	}
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		r.Notes = &v
	}
}

type UpdateNeedRequest struct {
	SeverityLevel *string    `json:"severity_level" validate:"omitempty,oneof=MILD MODERATE INTENSIVE mild moderate intensive"`
	Notes         *string    `json:"notes" validate:"omitempty,max=500"`
	EndDate       *time.Time `json:"end_date"`
	ReviewDate    *time.Time `json:"review_date"`
	IsActive      *bool      `json:"is_active"`
}

func (r *UpdateNeedRequest) Normalize() {
	if r.SeverityLevel != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.SeverityLevel))
		r.SeverityLevel = &v
	}
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		r.Notes = &v
	}
}
