// file: internals/features/school/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`

	SchoolName    string  `gorm:"column:school_name;type:varchar(255);not null" json:"school_name"`
	SchoolAddress *string `gorm:"column:school_address;type:varchar(255)" json:"school_address,omitempty"`
	SchoolCity    *string `gorm:"column:school_city;type:varchar(100)" json:"school_city,omitempty"`
	SchoolState   *string `gorm:"column:school_state;type:varchar(50)" json:"school_state,omitempty"`
	SchoolZipCode *string `gorm:"column:school_zip_code;type:varchar(20)" json:"school_zip_code,omitempty"`

	// IANA timezone, restricted to the US allow-list.
	SchoolTimezone string `gorm:"column:school_timezone;type:varchar(50);not null" json:"school_timezone"`

	// Opaque per-school settings blob (bell schedule labels, display
	// preferences). The API stores and returns it without interpreting it.
	SchoolSettings datatypes.JSON `gorm:"column:school_settings;type:jsonb" json:"school_settings,omitempty"`

	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"-"`
}

func (SchoolModel) TableName() string { return "schools" }
