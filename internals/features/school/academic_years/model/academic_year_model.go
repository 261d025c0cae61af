// file: internals/features/school/academic_years/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exactly one row may have academic_year_is_active = TRUE. Enforced in a
// transaction on create/activate, with a partial unique index as backstop:
//   CREATE UNIQUE INDEX uq_academic_years_active
//   ON academic_years (academic_year_is_active) WHERE academic_year_is_active;
type AcademicYearModel struct {
	AcademicYearID uuid.UUID `gorm:"column:academic_year_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_year_id"`

	AcademicYearName      string `gorm:"column:academic_year_name;type:varchar(20);not null;uniqueIndex" json:"academic_year_name"`
	AcademicYearShortName string `gorm:"column:academic_year_short_name;type:varchar(10);not null" json:"academic_year_short_name"`

	AcademicYearStartDate time.Time `gorm:"column:academic_year_start_date;type:date;not null" json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `gorm:"column:academic_year_end_date;type:date;not null" json:"academic_year_end_date"`

	AcademicYearIsActive bool `gorm:"column:academic_year_is_active;not null;default:false" json:"academic_year_is_active"`

	AcademicYearCreatedAt time.Time      `gorm:"column:academic_year_created_at;autoCreateTime" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"column:academic_year_updated_at;autoUpdateTime" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"-"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }
