// file: internals/features/school/student_services/controller/student_service_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/student_services/dto"
	"schoolhub_backend/internals/features/school/student_services/model"
	"schoolhub_backend/internals/features/school/student_services/service"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	helper "schoolhub_backend/internals/helpers"
)

type StudentServiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentServiceController(db *gorm.DB) *StudentServiceController {
	return &StudentServiceController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *StudentServiceController) bindAndValidate(c *fiber.Ctx, dst any) error {
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

/* =========================================================
   GET /api/u/student-services/tags
   ?school_id scopes to that school plus district-wide tags.
========================================================= */
func (ctl *StudentServiceController) ListTags(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SpecialNeedsTagModel{}).
		Order("special_needs_tag_name ASC")

	if c.QueryBool("active_only", true) {
		q = q.Where("special_needs_tag_is_active = TRUE")
	}
	if v := strings.TrimSpace(c.Query("school_id")); v != "" {
		schoolID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
		}
		q = q.Where("special_needs_tag_school_id = ? OR special_needs_tag_school_id IS NULL", schoolID)
	}

	var tags []model.SpecialNeedsTagModel
	if err := q.Find(&tags).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list tags")
	}
	return helper.JsonOK(c, "service tags fetched", tags)
}

/* =========================================================
   POST /api/a/student-services/tags
   Duplicate names are checked against the visible scope:
   the target school's own tags plus district-wide ones.
========================================================= */
func (ctl *StudentServiceController) CreateTag(c *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	dupScope := ctl.DB.Model(&model.SpecialNeedsTagModel{}).
		Where("special_needs_tag_name = ? AND special_needs_tag_is_active = TRUE", req.TagName)
	if req.SchoolID != nil {
		dupScope = dupScope.Where("special_needs_tag_school_id = ? OR special_needs_tag_school_id IS NULL", *req.SchoolID)
	} else {
		dupScope = dupScope.Where("special_needs_tag_school_id IS NULL")
	}
	var dup int64
	if err := dupScope.Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check tag name")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("a tag named %q already exists", req.TagName))
	}

	m := &model.SpecialNeedsTagModel{
		SpecialNeedsTagName:        req.TagName,
		SpecialNeedsTagCode:        service.DeriveTagCode(req.TagName),
		SpecialNeedsTagDescription: req.Description,
		SpecialNeedsTagSchoolID:    req.SchoolID,
		SpecialNeedsTagIsActive:    true,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Println("[ERROR] create service tag:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create tag")
	}
	return helper.JsonCreated(c, "service tag created", m)
}

/* =========================================================
   PUT /api/a/student-services/tags/:id
   Renaming re-derives the code.
========================================================= */
func (ctl *StudentServiceController) UpdateTag(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid tag id")
	}

	var req dto.UpdateTagRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.SpecialNeedsTagModel
	if err := ctl.DB.First(&m, "special_needs_tag_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tag not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch tag")
	}

	if req.TagName != nil && *req.TagName != m.SpecialNeedsTagName {
		var dup int64
		if err := ctl.DB.Model(&model.SpecialNeedsTagModel{}).
			Where("special_needs_tag_name = ? AND special_needs_tag_is_active = TRUE AND special_needs_tag_id <> ?",
				*req.TagName, id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check tag name")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("a tag named %q already exists", *req.TagName))
		}
		m.SpecialNeedsTagName = *req.TagName
		m.SpecialNeedsTagCode = service.DeriveTagCode(*req.TagName)
	}
	if req.Description != nil {
		m.SpecialNeedsTagDescription = req.Description
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update tag")
	}
	return helper.JsonUpdated(c, "service tag updated", m)
}

/* =========================================================
   DELETE /api/a/student-services/tags/:id  (soft)
========================================================= */
func (ctl *StudentServiceController) DeleteTag(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid tag id")
	}

	var m model.SpecialNeedsTagModel
	if err := ctl.DB.First(&m, "special_needs_tag_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tag not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch tag")
	}

	var inUse int64
	if err := ctl.DB.Model(&model.StudentSpecialNeedModel{}).
		Where("student_special_need_tag_id = ? AND student_special_need_is_active = TRUE", id).
		Count(&inUse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check tag usage")
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "tag is assigned to students")
	}

	if err := ctl.DB.Model(&m).Update("special_needs_tag_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete tag")
	}
	return helper.JsonDeleted(c, "service tag deactivated", fiber.Map{"special_needs_tag_id": id})
}

/* =========================================================
   GET /api/u/student-services/students/:studentId
========================================================= */
func (ctl *StudentServiceController) ListStudentNeeds(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	q := ctl.DB.Model(&model.StudentSpecialNeedModel{}).
		Where("student_special_need_student_id = ?", studentID).
		Order("student_special_need_start_date DESC")
	if c.QueryBool("active_only", true) {
		q = q.Where("student_special_need_is_active = TRUE")
	}

	var needs []model.StudentSpecialNeedModel
	if err := q.Find(&needs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list special needs")
	}
	return helper.JsonOK(c, "student special needs fetched", needs)
}

/* =========================================================
   POST /api/a/student-services/assignments
========================================================= */
func (ctl *StudentServiceController) AssignNeed(c *fiber.Ctx) error {
	var req dto.AssignNeedRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var n int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", req.StudentID).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check student")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "student not found")
	}
	if err := ctl.DB.Model(&model.SpecialNeedsTagModel{}).
		Where("special_needs_tag_id = ?", req.TagID).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check tag")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "special needs tag not found")
	}

	var dup int64
	if err := ctl.DB.Model(&model.StudentSpecialNeedModel{}).
		Where("student_special_need_student_id = ? AND student_special_need_tag_id = ? AND student_special_need_is_active = TRUE",
			req.StudentID, req.TagID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check assignment")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "student already has this special need assignment")
	}

	assignedBy, _ := helper.GetUserIDFromToken(c)

	m := &model.StudentSpecialNeedModel{
		StudentSpecialNeedStudentID:     req.StudentID,
		StudentSpecialNeedTagID:         req.TagID,
		StudentSpecialNeedSeverityLevel: req.SeverityLevel,
		StudentSpecialNeedNotes:         req.Notes,
		StudentSpecialNeedEndDate:       req.EndDate,
		StudentSpecialNeedReviewDate:    req.ReviewDate,
		StudentSpecialNeedIsActive:      true,
	}
	if req.StartDate != nil {
		m.StudentSpecialNeedStartDate = *req.StartDate
	} else {
		m.StudentSpecialNeedStartDate = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if assignedBy != uuid.Nil {
		m.StudentSpecialNeedAssignedBy = &assignedBy
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		log.Println("[ERROR] assign special need:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to assign special need")
	}
	return helper.JsonCreated(c, "special need assigned", m)
}

/* =========================================================
   PATCH /api/a/student-services/assignments/:id
   Stamps the reviewer whenever an admin touches the record.
========================================================= */
func (ctl *StudentServiceController) UpdateNeed(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	var req dto.UpdateNeedRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.StudentSpecialNeedModel
	if err := ctl.DB.First(&m, "student_special_need_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch assignment")
	}

	if req.SeverityLevel != nil {
		m.StudentSpecialNeedSeverityLevel = req.SeverityLevel
	}
	if req.Notes != nil {
		m.StudentSpecialNeedNotes = req.Notes
	}
	if req.EndDate != nil {
		m.StudentSpecialNeedEndDate = req.EndDate
	}
	if req.ReviewDate != nil {
		m.StudentSpecialNeedReviewDate = req.ReviewDate
	}
	if req.IsActive != nil {
		m.StudentSpecialNeedIsActive = *req.IsActive
	}

	if reviewer, err := helper.GetUserIDFromToken(c); err == nil && reviewer != uuid.Nil {
		now := time.Now().UTC().Truncate(24 * time.Hour)
		m.StudentSpecialNeedLastReviewedBy = &reviewer
		m.StudentSpecialNeedLastReviewedDate = &now
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update assignment")
	}
	return helper.JsonUpdated(c, "special need assignment updated", m)
}
