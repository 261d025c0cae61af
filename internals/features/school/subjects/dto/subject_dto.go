// file: internals/features/school/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"schoolhub_backend/internals/features/school/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectName string `json:"subject_name" validate:"required,min=1,max=50"`
	SubjectCode string `json:"subject_code" validate:"required,min=1,max=20"`
	SubjectType string `json:"subject_type" validate:"omitempty,oneof=CORE ENRICHMENT SPECIAL core enrichment special"`

	SubjectAppliesToElementary *bool `json:"subject_applies_to_elementary"`
	SubjectAppliesToMiddle     *bool `json:"subject_applies_to_middle"`
	SubjectIsHomeroomDefault   bool  `json:"subject_is_homeroom_default"`
	SubjectRequiresSpecialist  bool  `json:"subject_requires_specialist"`
	SubjectAllowsCrossGrade    bool  `json:"subject_allows_cross_grade"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	r.SubjectCode = strings.TrimSpace(r.SubjectCode)
	r.SubjectType = strings.ToUpper(strings.TrimSpace(r.SubjectType))
	if r.SubjectType == "" {
		r.SubjectType = model.SubjectTypeCore
	}
}

// ToModel assumes code has already been normalized. Admin-created subjects
// are never system core.
func (r *CreateSubjectRequest) ToModel(code string) *model.SubjectModel {
	appliesElem := true
	if r.SubjectAppliesToElementary != nil {
		appliesElem = *r.SubjectAppliesToElementary
	}
	appliesMiddle := true
	if r.SubjectAppliesToMiddle != nil {
		appliesMiddle = *r.SubjectAppliesToMiddle
	}
	return &model.SubjectModel{
		SubjectName:                r.SubjectName,
		SubjectCode:                code,
		SubjectType:                r.SubjectType,
		SubjectAppliesToElementary: appliesElem,
		SubjectAppliesToMiddle:     appliesMiddle,
		SubjectIsHomeroomDefault:   r.SubjectIsHomeroomDefault,
		SubjectRequiresSpecialist:  r.SubjectRequiresSpecialist,
		SubjectAllowsCrossGrade:    r.SubjectAllowsCrossGrade,
		SubjectIsSystemCore:        false,
		SubjectCreatedByAdmin:      true,
	}
}

type UpdateSubjectRequest struct {
	SubjectName *string `json:"subject_name" validate:"omitempty,min=1,max=50"`
	SubjectType *string `json:"subject_type" validate:"omitempty,oneof=CORE ENRICHMENT SPECIAL core enrichment special"`

	SubjectAppliesToElementary *bool `json:"subject_applies_to_elementary"`
	SubjectAppliesToMiddle     *bool `json:"subject_applies_to_middle"`
	SubjectIsHomeroomDefault   *bool `json:"subject_is_homeroom_default"`
	SubjectRequiresSpecialist  *bool `json:"subject_requires_specialist"`
	SubjectAllowsCrossGrade    *bool `json:"subject_allows_cross_grade"`
}

func (r *UpdateSubjectRequest) Normalize() {
	if r.SubjectName != nil {
		v := strings.TrimSpace(*r.SubjectName)
		r.SubjectName = &v
	}
	if r.SubjectType != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.SubjectType))
		r.SubjectType = &v
	}
}

// ApplyUpdates honors the system-core policy: system core subjects accept
// only a display name change; everything else is ignored.
func (r *UpdateSubjectRequest) ApplyUpdates(m *model.SubjectModel) {
	if r.SubjectName != nil {
		m.SubjectName = *r.SubjectName
	}
	if m.SubjectIsSystemCore {
		return
	}
	if r.SubjectType != nil {
		m.SubjectType = *r.SubjectType
	}
	if r.SubjectAppliesToElementary != nil {
		m.SubjectAppliesToElementary = *r.SubjectAppliesToElementary
	}
	if r.SubjectAppliesToMiddle != nil {
		m.SubjectAppliesToMiddle = *r.SubjectAppliesToMiddle
	}
	if r.SubjectIsHomeroomDefault != nil {
		m.SubjectIsHomeroomDefault = *r.SubjectIsHomeroomDefault
	}
	if r.SubjectRequiresSpecialist != nil {
		m.SubjectRequiresSpecialist = *r.SubjectRequiresSpecialist
	}
	if r.SubjectAllowsCrossGrade != nil {
		m.SubjectAllowsCrossGrade = *r.SubjectAllowsCrossGrade
	}
}
