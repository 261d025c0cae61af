// file: internals/features/school/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "schoolhub_backend/internals/features/school/classrooms/model"
	"schoolhub_backend/internals/features/school/rooms/dto"
	"schoolhub_backend/internals/features/school/rooms/model"
	helper "schoolhub_backend/internals/helpers"
)

type RoomController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *RoomController) bindAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if n, ok := dst.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if err := ctl.Validator.Struct(dst); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	return nil
}

// occupiedRoomIDs is the shared definition of "in use": the set of room ids
// referenced by an active classroom. Every availability answer in this
// controller goes through it so list, usage, and suggestions agree.
func (ctl *RoomController) occupiedRoomIDs() *gorm.DB {
	return ctl.DB.Model(&classroomModel.ClassroomModel{}).
		Select("classroom_room_id").
		Where("classroom_room_id IS NOT NULL AND classroom_is_active = TRUE")
}

/* =========================================================
   GET /api/u/rooms
   Query: ?school_id, ?room_type, ?min_capacity, ?available_only,
          ?is_active (default true), paging
========================================================= */
func (ctl *RoomController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.RoomModel{}).Order("room_code ASC")

	if v := strings.TrimSpace(c.Query("school_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
		}
		q = q.Where("room_school_id = ?", id)
	}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("room_type"))); v != "" {
		q = q.Where("room_type = ?", v)
	}
	if v := c.QueryInt("min_capacity", 0); v > 0 {
		q = q.Where("room_capacity >= ?", v)
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("is_active"))) {
	case "false":
		q = q.Where("room_is_active = FALSE")
	case "all":
		// no filter
	default:
		q = q.Where("room_is_active = TRUE")
	}
	if c.QueryBool("available_only", false) {
		q = q.Where("room_id NOT IN (?)", ctl.occupiedRoomIDs())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count rooms")
	}

	var rooms []model.RoomModel
	if err := q.Limit(p.PerPage).Offset(p.Offset).Find(&rooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list rooms")
	}
	return helper.JsonList(c, "rooms fetched", rooms,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================================================
   GET /api/u/rooms/availability
   Per-school summary of active rooms split by occupancy.
========================================================= */
func (ctl *RoomController) Availability(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(c.Query("school_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	var rooms []model.RoomModel
	if err := ctl.DB.
		Where("room_school_id = ? AND room_is_active = TRUE", schoolID).
		Order("room_code ASC").
		Find(&rooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list rooms")
	}

	var occupiedIDs []uuid.UUID
	if err := ctl.occupiedRoomIDs().Pluck("classroom_room_id", &occupiedIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check room usage")
	}
	occupied := make(map[uuid.UUID]bool, len(occupiedIDs))
	for _, id := range occupiedIDs {
		occupied[id] = true
	}

	availableByType := map[string][]model.RoomModel{}
	availableCount := 0
	for _, r := range rooms {
		if occupied[r.RoomID] {
			continue
		}
		availableCount++
		availableByType[r.RoomType] = append(availableByType[r.RoomType], r)
	}

	return helper.JsonOK(c, "room availability fetched", fiber.Map{
		"total_rooms":       len(rooms),
		"available_rooms":   availableCount,
		"occupied_rooms":    len(rooms) - availableCount,
		"available_by_type": availableByType,
	})
}

/* =========================================================
   GET /api/u/rooms/suggestions
   Query: ?school_id (required), ?required_capacity,
          ?preferred_type, ?needs_projector, ?needs_computers,
          ?needs_smartboard, ?needs_sink
   Scores free rooms against the requested profile.
========================================================= */
func (ctl *RoomController) Suggestions(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(c.Query("school_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	requiredCapacity := c.QueryInt("required_capacity", 0)
	preferredType := strings.ToUpper(strings.TrimSpace(c.Query("preferred_type")))

	q := ctl.DB.Model(&model.RoomModel{}).
		Where("room_school_id = ? AND room_is_active = TRUE AND room_is_bookable = TRUE", schoolID).
		Where("room_id NOT IN (?)", ctl.occupiedRoomIDs())
	if requiredCapacity > 0 {
		q = q.Where("room_capacity >= ?", requiredCapacity)
	}

	var rooms []model.RoomModel
	if err := q.Order("room_code ASC").Find(&rooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list rooms")
	}

	suggestions := make([]dto.RoomSuggestion, 0, len(rooms))
	for i := range rooms {
		r := &rooms[i]
		score := 10
		reasons := []string{"Available"}

		if requiredCapacity > 0 {
			if float64(r.RoomCapacity) <= float64(requiredCapacity)*1.2 {
				score += 20
				reasons = append(reasons, "Perfect size")
			} else {
				score += 10
				reasons = append(reasons, "Large enough")
			}
		}
		if c.QueryBool("needs_projector", false) && r.RoomHasProjector {
			score += 15
			reasons = append(reasons, "Has projector")
		}
		if c.QueryBool("needs_computers", false) && r.RoomHasComputers {
			score += 15
			reasons = append(reasons, "Has computers")
		}
		if c.QueryBool("needs_smartboard", false) && r.RoomHasSmartboard {
			score += 15
			reasons = append(reasons, "Has smartboard")
		}
		if c.QueryBool("needs_sink", false) && r.RoomHasSink {
			score += 15
			reasons = append(reasons, "Has sink")
		}
		if preferredType != "" && r.RoomType == preferredType {
			score += 10
			reasons = append(reasons, "Matches room type")
		}

		level := "Fair"
		switch {
		case score >= 50:
			level = "Excellent"
		case score >= 30:
			level = "Good"
		}

		suggestions = append(suggestions, dto.RoomSuggestion{
			Room:                r,
			Score:               score,
			MatchReasons:        reasons,
			RecommendationLevel: level,
		})
	}

	// Highest score first; room code already breaks ties from the query order.
	for i := 1; i < len(suggestions); i++ {
		for j := i; j > 0 && suggestions[j].Score > suggestions[j-1].Score; j-- {
			suggestions[j], suggestions[j-1] = suggestions[j-1], suggestions[j]
		}
	}

	return helper.JsonOK(c, "room suggestions fetched", suggestions)
}

/* =========================================================
   GET /api/u/rooms/:id
========================================================= */
func (ctl *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid room id")
	}
	var m model.RoomModel
	if err := ctl.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch room")
	}
	return helper.JsonOK(c, "room fetched", m)
}

/* =========================================================
   GET /api/u/rooms/:id/usage
========================================================= */
func (ctl *RoomController) Usage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid room id")
	}
	var m model.RoomModel
	if err := ctl.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch room")
	}

	var assigned []dto.AssignedClassroom
	if err := ctl.DB.Model(&classroomModel.ClassroomModel{}).
		Select("classroom_id, classroom_name, classroom_grade_level AS grade_level").
		Where("classroom_room_id = ? AND classroom_is_active = TRUE", id).
		Order("classroom_name ASC").
		Scan(&assigned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check room usage")
	}

	return helper.JsonOK(c, "room usage fetched", dto.RoomUsage{
		Room:               &m,
		IsAvailable:        len(assigned) == 0,
		AssignedClassrooms: assigned,
		UsageCount:         len(assigned),
	})
}

/* =========================================================
   POST /api/a/rooms
========================================================= */
func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var schoolCount int64
	if err := ctl.DB.Table("schools").
		Where("school_id = ? AND school_deleted_at IS NULL", req.RoomSchoolID).
		Count(&schoolCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check school")
	}
	if schoolCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "school not found")
	}

	var dup int64
	if err := ctl.DB.Model(&model.RoomModel{}).
		Where("room_school_id = ? AND room_code = ? AND room_is_active = TRUE", req.RoomSchoolID, req.RoomCode).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check room code")
	}
	if dup > 0 {
		return helper.JsonDomainError(c, helper.ErrDuplicateCode)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonDomainError(c, helper.ErrDuplicateCode)
		}
		log.Println("[ERROR] create room:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create room")
	}
	return helper.JsonCreated(c, "room created", m)
}

/* =========================================================
   PATCH /api/a/rooms/:id
========================================================= */
func (ctl *RoomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid room id")
	}

	var req dto.UpdateRoomRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.RoomModel
	if err := ctl.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch room")
	}

	if req.RoomCode != nil && *req.RoomCode != m.RoomCode {
		var dup int64
		if err := ctl.DB.Model(&model.RoomModel{}).
			Where("room_school_id = ? AND room_code = ? AND room_is_active = TRUE AND room_id <> ?",
				m.RoomSchoolID, *req.RoomCode, id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check room code")
		}
		if dup > 0 {
			return helper.JsonDomainError(c, helper.ErrDuplicateCode)
		}
	}

	req.ApplyUpdates(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonDomainError(c, helper.ErrDuplicateCode)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update room")
	}
	return helper.JsonUpdated(c, "room updated", m)
}

/* =========================================================
   DELETE /api/a/rooms/:id
   Soft deactivation. Rejected while any active classroom
   still points at the room; the message names them.
========================================================= */
func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid room id")
	}

	var m model.RoomModel
	if err := ctl.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch room")
	}

	var names []string
	if err := ctl.DB.Model(&classroomModel.ClassroomModel{}).
		Where("classroom_room_id = ? AND classroom_is_active = TRUE", id).
		Pluck("classroom_name", &names).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check room usage")
	}
	if len(names) > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("%s: %s", helper.ErrRoomInUse.Error(), strings.Join(names, ", ")))
	}

	if err := ctl.DB.Model(&m).Update("room_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete room")
	}
	return helper.JsonDeleted(c, "room deactivated", fiber.Map{"room_id": id})
}

/* =========================================================
   POST /api/a/rooms/:id/restore
========================================================= */
func (ctl *RoomController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid room id")
	}

	var m model.RoomModel
	if err := ctl.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch room")
	}
	if m.RoomIsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "room is already active")
	}

	// The code may have been reused by another active room while this one
	// was deactivated.
	var dup int64
	if err := ctl.DB.Model(&model.RoomModel{}).
		Where("room_school_id = ? AND room_code = ? AND room_is_active = TRUE AND room_id <> ?",
			m.RoomSchoolID, m.RoomCode, id).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check room code")
	}
	if dup > 0 {
		return helper.JsonDomainError(c, helper.ErrDuplicateCode)
	}

	if err := ctl.DB.Model(&m).Update("room_is_active", true).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonDomainError(c, helper.ErrDuplicateCode)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to restore room")
	}
	m.RoomIsActive = true
	return helper.JsonUpdated(c, "room restored", m)
}
