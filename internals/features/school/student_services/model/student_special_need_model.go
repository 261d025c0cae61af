// file: internals/features/school/student_services/model/student_special_need_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SeverityMild      = "MILD"
	SeverityModerate  = "MODERATE"
	SeverityIntensive = "INTENSIVE"
)

type StudentSpecialNeedModel struct {
	StudentSpecialNeedID uuid.UUID `gorm:"column:student_special_need_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_special_need_id"`

	StudentSpecialNeedStudentID uuid.UUID `gorm:"column:student_special_need_student_id;type:uuid;not null;index" json:"student_special_need_student_id"`
	StudentSpecialNeedTagID     uuid.UUID `gorm:"column:student_special_need_tag_id;type:uuid;not null;index" json:"student_special_need_tag_id"`

	StudentSpecialNeedSeverityLevel *string `gorm:"column:student_special_need_severity_level;type:varchar(20)" json:"student_special_need_severity_level,omitempty"`
	StudentSpecialNeedNotes         *string `gorm:"column:student_special_need_notes;type:varchar(500)" json:"student_special_need_notes,omitempty"`

	StudentSpecialNeedStartDate  time.Time  `gorm:"column:student_special_need_start_date;type:date;not null" json:"student_special_need_start_date"`
	StudentSpecialNeedEndDate    *time.Time `gorm:"column:student_special_need_end_date;type:date" json:"student_special_need_end_date,omitempty"`
	StudentSpecialNeedReviewDate *time.Time `gorm:"column:student_special_need_review_date;type:date" json:"student_special_need_review_date,omitempty"`

	StudentSpecialNeedIsActive bool `gorm:"column:student_special_need_is_active;not null;default:true" json:"student_special_need_is_active"`

	StudentSpecialNeedAssignedBy       *uuid.UUID `gorm:"column:student_special_need_assigned_by;type:uuid" json:"student_special_need_assigned_by,omitempty"`
	StudentSpecialNeedLastReviewedBy   *uuid.UUID `gorm:"column:student_special_need_last_reviewed_by;type:uuid" json:"student_special_need_last_reviewed_by,omitempty"`
	StudentSpecialNeedLastReviewedDate *time.Time `gorm:"column:student_special_need_last_reviewed_date;type:date" json:"student_special_need_last_reviewed_date,omitempty"`

	StudentSpecialNeedCreatedAt time.Time      `gorm:"column:student_special_need_created_at;autoCreateTime" json:"student_special_need_created_at"`
	StudentSpecialNeedUpdatedAt time.Time      `gorm:"column:student_special_need_updated_at;autoUpdateTime" json:"student_special_need_updated_at"`
	StudentSpecialNeedDeletedAt gorm.DeletedAt `gorm:"column:student_special_need_deleted_at;index" json:"-"`
}

func (StudentSpecialNeedModel) TableName() string { return "student_special_needs" }
