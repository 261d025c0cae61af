// file: internals/features/school/schools/dto/school_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	"schoolhub_backend/internals/features/school/schools/model"
)

type CreateSchoolRequest struct {
	SchoolName     string  `json:"school_name" validate:"required,min=1,max=255"`
	SchoolAddress  *string `json:"school_address" validate:"omitempty,max=255"`
	SchoolCity     *string `json:"school_city" validate:"omitempty,max=100"`
	SchoolState    *string `json:"school_state" validate:"omitempty,max=50"`
	SchoolZipCode  *string `json:"school_zip_code" validate:"omitempty,max=20"`
	SchoolTimezone string  `json:"school_timezone" validate:"required"`

	SchoolSettings datatypes.JSON `json:"school_settings" validate:"omitempty"`
}

func (r *CreateSchoolRequest) Normalize() {
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.SchoolTimezone = strings.TrimSpace(r.SchoolTimezone)
	trimPtr(&r.SchoolAddress)
	trimPtr(&r.SchoolCity)
	trimPtr(&r.SchoolState)
	trimPtr(&r.SchoolZipCode)
}

func (r *CreateSchoolRequest) ToModel() *model.SchoolModel {
	return &model.SchoolModel{
		SchoolName:     r.SchoolName,
		SchoolAddress:  r.SchoolAddress,
		SchoolCity:     r.SchoolCity,
		SchoolState:    r.SchoolState,
		SchoolZipCode:  r.SchoolZipCode,
		SchoolTimezone: r.SchoolTimezone,
		SchoolSettings: r.SchoolSettings,
	}
}

type UpdateSchoolRequest struct {
	SchoolName     *string `json:"school_name" validate:"omitempty,min=1,max=255"`
	SchoolAddress  *string `json:"school_address" validate:"omitempty,max=255"`
	SchoolCity     *string `json:"school_city" validate:"omitempty,max=100"`
	SchoolState    *string `json:"school_state" validate:"omitempty,max=50"`
	SchoolZipCode  *string `json:"school_zip_code" validate:"omitempty,max=20"`
	SchoolTimezone *string `json:"school_timezone"`

	SchoolSettings datatypes.JSON `json:"school_settings" validate:"omitempty"`
}

func (r *UpdateSchoolRequest) Normalize() {
	trimPtr(&r.SchoolName)
	trimPtr(&r.SchoolAddress)
	trimPtr(&r.SchoolCity)
	trimPtr(&r.SchoolState)
	trimPtr(&r.SchoolZipCode)
	trimPtr(&r.SchoolTimezone)
}

func (r *UpdateSchoolRequest) ApplyUpdates(m *model.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = r.SchoolAddress
	}
	if r.SchoolCity != nil {
		m.SchoolCity = r.SchoolCity
	}
	if r.SchoolState != nil {
		m.SchoolState = r.SchoolState
	}
	if r.SchoolZipCode != nil {
		m.SchoolZipCode = r.SchoolZipCode
	}
	if r.SchoolTimezone != nil {
		m.SchoolTimezone = *r.SchoolTimezone
	}
	if r.SchoolSettings != nil {
		m.SchoolSettings = r.SchoolSettings
	}
}

func trimPtr(p **string) {
	if *p != nil {
		v := strings.TrimSpace(**p)
		*p = &v
	}
}
