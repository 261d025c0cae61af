// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserEmail    string `gorm:"column:user_email;type:varchar(255);uniqueIndex;not null" json:"user_email"`
	UserPassword string `gorm:"column:user_password;type:varchar(255);not null" json:"-"`

	UserFirstName string `gorm:"column:user_first_name;type:varchar(100);not null" json:"user_first_name"`
	UserLastName  string `gorm:"column:user_last_name;type:varchar(100);not null" json:"user_last_name"`

	UserIsActive    bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserLastLoginAt *time.Time `gorm:"column:user_last_login_at" json:"user_last_login_at,omitempty"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) FullName() string {
	return u.UserFirstName + " " + u.UserLastName
}
