// file: internals/features/school/rooms/dto/room_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/rooms/model"
)

type CreateRoomRequest struct {
	RoomSchoolID uuid.UUID `json:"room_school_id" validate:"required"`
	RoomName     string    `json:"room_name" validate:"required,min=1,max=100"`
	RoomCode     string    `json:"room_code" validate:"required,min=1,max=20"`
	RoomType     string    `json:"room_type" validate:"required,min=1,max=30"`
	RoomCapacity int       `json:"room_capacity" validate:"required,min=1,max=100"`

	RoomHasProjector  bool `json:"room_has_projector"`
	RoomHasComputers  bool `json:"room_has_computers"`
	RoomHasSmartboard bool `json:"room_has_smartboard"`
	RoomHasSink       bool `json:"room_has_sink"`
	RoomIsBookable    bool `json:"room_is_bookable"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomName = strings.TrimSpace(r.RoomName)
	r.RoomCode = strings.ToUpper(strings.TrimSpace(r.RoomCode))
	r.RoomType = strings.ToUpper(strings.TrimSpace(r.RoomType))
}

func (r *CreateRoomRequest) ToModel() *model.RoomModel {
	return &model.RoomModel{
		RoomSchoolID:      r.RoomSchoolID,
		RoomName:          r.RoomName,
		RoomCode:          r.RoomCode,
		RoomType:          r.RoomType,
		RoomCapacity:      r.RoomCapacity,
		RoomHasProjector:  r.RoomHasProjector,
		RoomHasComputers:  r.RoomHasComputers,
		RoomHasSmartboard: r.RoomHasSmartboard,
		RoomHasSink:       r.RoomHasSink,
		RoomIsBookable:    r.RoomIsBookable,
		RoomIsActive:      true,
	}
}

type UpdateRoomRequest struct {
	RoomName     *string `json:"room_name" validate:"omitempty,min=1,max=100"`
	RoomCode     *string `json:"room_code" validate:"omitempty,min=1,max=20"`
	RoomType     *string `json:"room_type" validate:"omitempty,min=1,max=30"`
	RoomCapacity *int    `json:"room_capacity" validate:"omitempty,min=1,max=100"`

	RoomHasProjector  *bool `json:"room_has_projector"`
	RoomHasComputers  *bool `json:"room_has_computers"`
	RoomHasSmartboard *bool `json:"room_has_smartboard"`
	RoomHasSink       *bool `json:"room_has_sink"`
	RoomIsBookable    *bool `json:"room_is_bookable"`
}

func (r *UpdateRoomRequest) Normalize() {
	if r.RoomName != nil {
		v := strings.TrimSpace(*r.RoomName)
		r.RoomName = &v
	}
	if r.RoomCode != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.RoomCode))
		r.RoomCode = &v
	}
	if r.RoomType != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.RoomType))
		r.RoomType = &v
	}
}

func (r *UpdateRoomRequest) ApplyUpdates(m *model.RoomModel) {
	if r.RoomName != nil {
		m.RoomName = *r.RoomName
	}
	if r.RoomCode != nil {
		m.RoomCode = *r.RoomCode
	}
	if r.RoomType != nil {
		m.RoomType = *r.RoomType
	}
	if r.RoomCapacity != nil {
		m.RoomCapacity = *r.RoomCapacity
	}
	if r.RoomHasProjector != nil {
		m.RoomHasProjector = *r.RoomHasProjector
	}
	if r.RoomHasComputers != nil {
		m.RoomHasComputers = *r.RoomHasComputers
	}
	if r.RoomHasSmartboard != nil {
		m.RoomHasSmartboard = *r.RoomHasSmartboard
	}
	if r.RoomHasSink != nil {
		m.RoomHasSink = *r.RoomHasSink
	}
	if r.RoomIsBookable != nil {
		m.RoomIsBookable = *r.RoomIsBookable
	}
}

/* =========================
   Read models
========================= */

type AssignedClassroom struct {
	ClassroomID   uuid.UUID `json:"classroom_id"`
	ClassroomName string    `json:"classroom_name"`
	GradeLevel    string    `json:"grade_level"`
}

type RoomUsage struct {
	Room               *model.RoomModel    `json:"room"`
	IsAvailable        bool                `json:"is_available"`
	AssignedClassrooms []AssignedClassroom `json:"assigned_classrooms"`
	UsageCount         int                 `json:"usage_count"`
}

type RoomSuggestion struct {
	Room                *model.RoomModel `json:"room"`
	Score               int              `json:"score"`
	MatchReasons        []string         `json:"match_reasons"`
	RecommendationLevel string           `json:"recommendation_level"`
}
