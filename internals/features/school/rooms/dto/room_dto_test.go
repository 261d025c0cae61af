// file: internals/features/school/rooms/dto/room_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoomRequest_Normalize(t *testing.T) {
	req := CreateRoomRequest{
		RoomName: "  Science Lab ",
		RoomCode: " lab-a ",
		RoomType: "laboratory",
	}
	req.Normalize()
	assert.Equal(t, "Science Lab", req.RoomName)
	assert.Equal(t, "LAB-A", req.RoomCode)
	assert.Equal(t, "LABORATORY", req.RoomType)
}

func TestCreateRoomRequest_ToModelDefaults(t *testing.T) {
	req := CreateRoomRequest{RoomName: "Gym", RoomCode: "GYM", RoomType: "GYM", RoomCapacity: 60}
	m := req.ToModel()
	assert.True(t, m.RoomIsActive)
	assert.Equal(t, 60, m.RoomCapacity)
}

func TestUpdateRoomRequest_ApplyUpdatesPartial(t *testing.T) {
	req := CreateRoomRequest{RoomName: "Gym", RoomCode: "GYM", RoomType: "GYM", RoomCapacity: 60}
	m := req.ToModel()

	newCode := "gym-1"
	bookable := false
	upd := UpdateRoomRequest{RoomCode: &newCode, RoomIsBookable: &bookable}
	upd.Normalize()
	upd.ApplyUpdates(m)

	assert.Equal(t, "GYM-1", m.RoomCode)
	assert.False(t, m.RoomIsBookable)
	// untouched fields keep their values
	assert.Equal(t, "Gym", m.RoomName)
	assert.Equal(t, 60, m.RoomCapacity)
}
