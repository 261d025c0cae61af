// file: internals/features/school/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room codes are unique per school among ACTIVE rooms only; a soft-deleted
// room's code may be reused. Backstopped by a partial unique index:
//   CREATE UNIQUE INDEX uq_rooms_school_code_active
//   ON rooms (room_school_id, room_code) WHERE room_is_active;
type RoomModel struct {
	RoomID uuid.UUID `gorm:"column:room_id;type:uuid;default:gen_random_uuid();primaryKey" json:"room_id"`

	RoomSchoolID uuid.UUID `gorm:"column:room_school_id;type:uuid;not null;index" json:"room_school_id"`

	RoomName string `gorm:"column:room_name;type:varchar(100);not null" json:"room_name"`
	RoomCode string `gorm:"column:room_code;type:varchar(20);not null" json:"room_code"`
	// "CLASSROOM", "LAB", "GYM", "CAFETERIA", ...
	RoomType string `gorm:"column:room_type;type:varchar(30);not null" json:"room_type"`

	// Valid range [1,100].
	RoomCapacity int `gorm:"column:room_capacity;not null" json:"room_capacity"`

	RoomHasProjector  bool `gorm:"column:room_has_projector;not null;default:false" json:"room_has_projector"`
	RoomHasComputers  bool `gorm:"column:room_has_computers;not null;default:false" json:"room_has_computers"`
	RoomHasSmartboard bool `gorm:"column:room_has_smartboard;not null;default:false" json:"room_has_smartboard"`
	RoomHasSink       bool `gorm:"column:room_has_sink;not null;default:false" json:"room_has_sink"`

	RoomIsBookable bool `gorm:"column:room_is_bookable;not null;default:true" json:"room_is_bookable"`
	RoomIsActive   bool `gorm:"column:room_is_active;not null;default:true" json:"room_is_active"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"-"`
}

func (RoomModel) TableName() string { return "rooms" }
