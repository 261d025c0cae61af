// file: internals/features/school/academic_years/dto/academic_year_dto.go
package dto

import (
	"strings"
	"time"

	"schoolhub_backend/internals/features/school/academic_years/model"
)

type CreateAcademicYearRequest struct {
	AcademicYearName      string    `json:"academic_year_name" validate:"required,min=9,max=9"`
	AcademicYearShortName *string   `json:"academic_year_short_name" validate:"omitempty,max=10"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date" validate:"required"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date" validate:"required"`
	AcademicYearIsActive  bool      `json:"academic_year_is_active"`
}

func (r *CreateAcademicYearRequest) Normalize() {
	r.AcademicYearName = strings.TrimSpace(r.AcademicYearName)
	if r.AcademicYearShortName != nil {
		v := strings.TrimSpace(*r.AcademicYearShortName)
		r.AcademicYearShortName = &v
	}
}

func (r *CreateAcademicYearRequest) ToModel(shortName string) *model.AcademicYearModel {
	return &model.AcademicYearModel{
		AcademicYearName:      r.AcademicYearName,
		AcademicYearShortName: shortName,
		AcademicYearStartDate: r.AcademicYearStartDate,
		AcademicYearEndDate:   r.AcademicYearEndDate,
		AcademicYearIsActive:  r.AcademicYearIsActive,
	}
}

type UpdateAcademicYearRequest struct {
	AcademicYearShortName *string    `json:"academic_year_short_name" validate:"omitempty,min=1,max=10"`
	AcademicYearStartDate *time.Time `json:"academic_year_start_date"`
	AcademicYearEndDate   *time.Time `json:"academic_year_end_date"`
}

func (r *UpdateAcademicYearRequest) Normalize() {
	if r.AcademicYearShortName != nil {
		v := strings.TrimSpace(*r.AcademicYearShortName)
		r.AcademicYearShortName = &v
	}
}

func (r *UpdateAcademicYearRequest) ApplyUpdates(m *model.AcademicYearModel) {
	if r.AcademicYearShortName != nil {
		m.AcademicYearShortName = *r.AcademicYearShortName
	}
	if r.AcademicYearStartDate != nil {
		m.AcademicYearStartDate = *r.AcademicYearStartDate
	}
	if r.AcademicYearEndDate != nil {
		m.AcademicYearEndDate = *r.AcademicYearEndDate
	}
}
