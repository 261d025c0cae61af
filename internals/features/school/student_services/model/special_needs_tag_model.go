// file: internals/features/school/student_services/model/special_needs_tag_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A nil school id makes the tag district wide: visible to every school
// alongside that school's own tags.
type SpecialNeedsTagModel struct {
	SpecialNeedsTagID uuid.UUID `gorm:"column:special_needs_tag_id;type:uuid;default:gen_random_uuid();primaryKey" json:"special_needs_tag_id"`

	SpecialNeedsTagName        string  `gorm:"column:special_needs_tag_name;type:varchar(50);not null" json:"special_needs_tag_name"`
	SpecialNeedsTagCode        string  `gorm:"column:special_needs_tag_code;type:varchar(20);not null" json:"special_needs_tag_code"`
	SpecialNeedsTagDescription *string `gorm:"column:special_needs_tag_description;type:varchar(200)" json:"special_needs_tag_description,omitempty"`

	SpecialNeedsTagSchoolID *uuid.UUID `gorm:"column:special_needs_tag_school_id;type:uuid;index" json:"special_needs_tag_school_id,omitempty"`

	SpecialNeedsTagIsActive bool `gorm:"column:special_needs_tag_is_active;not null;default:true" json:"special_needs_tag_is_active"`

	SpecialNeedsTagCreatedAt time.Time      `gorm:"column:special_needs_tag_created_at;autoCreateTime" json:"special_needs_tag_created_at"`
	SpecialNeedsTagUpdatedAt time.Time      `gorm:"column:special_needs_tag_updated_at;autoUpdateTime" json:"special_needs_tag_updated_at"`
	SpecialNeedsTagDeletedAt gorm.DeletedAt `gorm:"column:special_needs_tag_deleted_at;index" json:"-"`
}

func (SpecialNeedsTagModel) TableName() string { return "special_needs_tag_library" }
