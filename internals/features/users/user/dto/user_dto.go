// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/users/user/model"
)

/* =========================
   Requests
========================= */

type CreateUserRequest struct {
	UserEmail     string `json:"user_email" validate:"required,email,max=255"`
	UserPassword  string `json:"user_password" validate:"required,min=8,max=100"`
	UserFirstName string `json:"user_first_name" validate:"required,min=1,max=100"`
	UserLastName  string `json:"user_last_name" validate:"required,min=1,max=100"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
	r.UserFirstName = strings.TrimSpace(r.UserFirstName)
	r.UserLastName = strings.TrimSpace(r.UserLastName)
}

func (r *CreateUserRequest) ToModel(hashedPassword string) *model.UserModel {
	return &model.UserModel{
		UserEmail:     r.UserEmail,
		UserPassword:  hashedPassword,
		UserFirstName: r.UserFirstName,
		UserLastName:  r.UserLastName,
		UserIsActive:  true,
	}
}

// Pointer fields so PATCH can tell "absent" from "set to zero value".
type UpdateUserRequest struct {
	UserEmail     *string `json:"user_email" validate:"omitempty,email,max=255"`
	UserFirstName *string `json:"user_first_name" validate:"omitempty,min=1,max=100"`
	UserLastName  *string `json:"user_last_name" validate:"omitempty,min=1,max=100"`
	UserIsActive  *bool   `json:"user_is_active"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserEmail != nil {
		v := strings.ToLower(strings.TrimSpace(*r.UserEmail))
		r.UserEmail = &v
	}
	if r.UserFirstName != nil {
		v := strings.TrimSpace(*r.UserFirstName)
		r.UserFirstName = &v
	}
	if r.UserLastName != nil {
		v := strings.TrimSpace(*r.UserLastName)
		r.UserLastName = &v
	}
}

func (r *UpdateUserRequest) ApplyUpdates(m *model.UserModel) {
	if r.UserEmail != nil {
		m.UserEmail = *r.UserEmail
	}
	if r.UserFirstName != nil {
		m.UserFirstName = *r.UserFirstName
	}
	if r.UserLastName != nil {
		m.UserLastName = *r.UserLastName
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
}

type GrantRoleRequest struct {
	UserSchoolRoleSchoolID uuid.UUID `json:"user_school_role_school_id" validate:"required"`
	UserSchoolRoleRole     string    `json:"user_school_role_role" validate:"required,min=1,max=100"`
}

func (r *GrantRoleRequest) Normalize() {
	r.UserSchoolRoleRole = strings.TrimSpace(r.UserSchoolRoleRole)
}

/* =========================
   Responses
========================= */

type UserResponse struct {
	UserID          uuid.UUID  `json:"user_id"`
	UserEmail       string     `json:"user_email"`
	UserFirstName   string     `json:"user_first_name"`
	UserLastName    string     `json:"user_last_name"`
	UserFullName    string     `json:"user_full_name"`
	UserIsActive    bool       `json:"user_is_active"`
	UserLastLoginAt *time.Time `json:"user_last_login_at,omitempty"`
	UserCreatedAt   time.Time  `json:"user_created_at"`
}

func FromModel(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:          m.UserID,
		UserEmail:       m.UserEmail,
		UserFirstName:   m.UserFirstName,
		UserLastName:    m.UserLastName,
		UserFullName:    m.FullName(),
		UserIsActive:    m.UserIsActive,
		UserLastLoginAt: m.UserLastLoginAt,
		UserCreatedAt:   m.UserCreatedAt,
	}
}

type RoleGrantInfo struct {
	UserSchoolRoleID       uuid.UUID `json:"user_school_role_id"`
	UserSchoolRoleSchoolID uuid.UUID `json:"user_school_role_school_id"`
	UserSchoolRoleRole     string    `json:"user_school_role_role"`
	UserSchoolRoleRoleTag  string    `json:"user_school_role_role_tag"`
	UserSchoolRoleIsActive bool      `json:"user_school_role_is_active"`
}

type UserWithRoles struct {
	UserResponse
	UserRoles []RoleGrantInfo `json:"user_roles"`
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
