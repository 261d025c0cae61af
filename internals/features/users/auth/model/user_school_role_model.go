// file: internals/features/users/auth/model/user_school_role_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A role grant: user X acts as <role> at school Y. Role keeps the free-text
// label as entered; RoleTag is the canonical tag derived at write time.
type UserSchoolRoleModel struct {
	UserSchoolRoleID uuid.UUID `gorm:"column:user_school_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_school_role_id"`

	UserSchoolRoleUserID   uuid.UUID `gorm:"column:user_school_role_user_id;type:uuid;not null;index:idx_usr_role_user" json:"user_school_role_user_id"`
	UserSchoolRoleSchoolID uuid.UUID `gorm:"column:user_school_role_school_id;type:uuid;not null;index" json:"user_school_role_school_id"`

	UserSchoolRoleRole    string `gorm:"column:user_school_role_role;type:varchar(100);not null" json:"user_school_role_role"`
	UserSchoolRoleRoleTag string `gorm:"column:user_school_role_role_tag;type:varchar(20);not null" json:"user_school_role_role_tag"`

	UserSchoolRoleIsActive bool `gorm:"column:user_school_role_is_active;not null;default:true" json:"user_school_role_is_active"`

	UserSchoolRoleCreatedAt time.Time      `gorm:"column:user_school_role_created_at;autoCreateTime" json:"user_school_role_created_at"`
	UserSchoolRoleUpdatedAt time.Time      `gorm:"column:user_school_role_updated_at;autoUpdateTime" json:"user_school_role_updated_at"`
	UserSchoolRoleDeletedAt gorm.DeletedAt `gorm:"column:user_school_role_deleted_at;index" json:"-"`
}

func (UserSchoolRoleModel) TableName() string { return "user_school_roles" }
