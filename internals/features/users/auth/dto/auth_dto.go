// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
)

/* =========================
   Requests
========================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=100"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

type SetPreferenceRequest struct {
	Role     string    `json:"role" validate:"required,min=1,max=100"`
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
}

func (r *SetPreferenceRequest) Normalize() {
	r.Role = strings.TrimSpace(r.Role)
}

// Body fallback for clients that cannot send the refresh cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

/* =========================
   Responses
========================= */

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AuthUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
}

type ContextRole struct {
	Role     string    `json:"role"`
	SchoolID uuid.UUID `json:"school_id"`
	IsActive bool      `json:"is_active"`
}

type ContextSchool struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ContextResponse struct {
	User         AuthUser        `json:"user"`
	Roles        []ContextRole   `json:"roles"`
	Schools      []ContextSchool `json:"schools"`
	ActiveRole   *string         `json:"active_role"`
	ActiveSchool *uuid.UUID      `json:"active_school"`
}
