// file: internals/features/school/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SubjectTypeCore       = "CORE"
	SubjectTypeEnrichment = "ENRICHMENT"
	SubjectTypeSpecial    = "SPECIAL"
)

type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`

	SubjectName string `gorm:"column:subject_name;type:varchar(50);not null" json:"subject_name"`
	// Normalized: upper case, spaces replaced by underscores, unique.
	SubjectCode string `gorm:"column:subject_code;type:varchar(20);uniqueIndex;not null" json:"subject_code"`

	SubjectType string `gorm:"column:subject_type;type:varchar(20);not null;default:CORE" json:"subject_type"`

	SubjectAppliesToElementary bool `gorm:"column:subject_applies_to_elementary;not null;default:true" json:"subject_applies_to_elementary"`
	SubjectAppliesToMiddle     bool `gorm:"column:subject_applies_to_middle;not null;default:true" json:"subject_applies_to_middle"`

	SubjectIsHomeroomDefault  bool `gorm:"column:subject_is_homeroom_default;not null;default:false" json:"subject_is_homeroom_default"`
	SubjectRequiresSpecialist bool `gorm:"column:subject_requires_specialist;not null;default:false" json:"subject_requires_specialist"`
	SubjectAllowsCrossGrade   bool `gorm:"column:subject_allows_cross_grade;not null;default:false" json:"subject_allows_cross_grade"`

	// System core subjects only accept display-name changes and can never be
	// deleted.
	SubjectIsSystemCore   bool `gorm:"column:subject_is_system_core;not null;default:false" json:"subject_is_system_core"`
	SubjectCreatedByAdmin bool `gorm:"column:subject_created_by_admin;not null;default:true" json:"subject_created_by_admin"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }
