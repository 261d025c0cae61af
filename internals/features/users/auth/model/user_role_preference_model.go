// file: internals/features/users/auth/model/user_role_preference_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// The user's active role+school pair. One row per user; auto-created from the
// first grant when the auth context is read.
type UserRolePreferenceModel struct {
	UserRolePreferenceUserID   uuid.UUID `gorm:"column:user_role_preference_user_id;type:uuid;primaryKey" json:"user_role_preference_user_id"`
	UserRolePreferenceRole     string    `gorm:"column:user_role_preference_role;type:varchar(100);not null" json:"user_role_preference_role"`
	UserRolePreferenceSchoolID uuid.UUID `gorm:"column:user_role_preference_school_id;type:uuid;not null" json:"user_role_preference_school_id"`

	UserRolePreferenceCreatedAt time.Time `gorm:"column:user_role_preference_created_at;autoCreateTime" json:"user_role_preference_created_at"`
	UserRolePreferenceUpdatedAt time.Time `gorm:"column:user_role_preference_updated_at;autoUpdateTime" json:"user_role_preference_updated_at"`
}

func (UserRolePreferenceModel) TableName() string { return "user_role_preferences" }
