// file: internals/features/school/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "schoolhub_backend/internals/features/school/classrooms/model"
	"schoolhub_backend/internals/features/school/subjects/dto"
	"schoolhub_backend/internals/features/school/subjects/model"
	"schoolhub_backend/internals/features/school/subjects/service"
	helper "schoolhub_backend/internals/helpers"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *SubjectController) bindAndValidate(c *fiber.Ctx, dst any) error {
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
   GET /api/u/subjects
   Query: ?grade_band=elementary|middle, ?subject_type=
========================================================= */
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SubjectModel{}).Order("subject_name ASC")

	switch strings.ToLower(strings.TrimSpace(c.Query("grade_band"))) {
	case "elementary":
		q = q.Where("subject_applies_to_elementary = TRUE")
	case "middle":
		q = q.Where("subject_applies_to_middle = TRUE")
	}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("subject_type"))); v != "" {
		q = q.Where("subject_type = ?", v)
	}

	var subjects []model.SubjectModel
	if err := q.Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list subjects")
	}
	return helper.JsonOK(c, "subjects fetched", subjects)
}

/* =========================================================
   GET /api/u/subjects/core
========================================================= */
func (ctl *SubjectController) ListHomeroomDefaults(c *fiber.Ctx) error {
	var subjects []model.SubjectModel
	if err := ctl.DB.
		Where("subject_is_homeroom_default = TRUE").
		Order("subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list core subjects")
	}
	return helper.JsonOK(c, "core subjects fetched", subjects)
}

/* =========================================================
   POST /api/a/subjects
   A new homeroom-default subject triggers the reconciler
   after the create commits; its outcome rides along as a
   warning, never a failure.
========================================================= */
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	code, err := service.NormalizeCode(req.SubjectCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var n int64
	if err := ctl.DB.Model(&model.SubjectModel{}).
		Where("subject_code = ?", code).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check subject code")
	}
	if n > 0 {
		return helper.JsonDomainError(c, helper.ErrDuplicateCode)
	}

	m := req.ToModel(code)
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonDomainError(c, helper.ErrDuplicateCode)
		}
		log.Println("[ERROR] create subject:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create subject")
	}

	body := fiber.Map{"subject": m}
	if m.SubjectIsHomeroomDefault {
		body["homeroom_sync"] = service.SyncHomeroomClassrooms(ctl.DB, m)
	}
	return helper.JsonCreated(c, "subject created", body)
}

/* =========================================================
   PATCH /api/a/subjects/:id  (PUT is an alias)
========================================================= */
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid subject id")
	}

	var req dto.UpdateSubjectRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.SubjectModel
	if err := ctl.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch subject")
	}

	wasHomeroomDefault := m.SubjectIsHomeroomDefault
	req.ApplyUpdates(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update subject")
	}

	body := fiber.Map{"subject": m}
	// The reconciler runs only on a flip to true on non-system-core
	// subjects. Flipping to false preserves existing classrooms.
	if !m.SubjectIsSystemCore && !wasHomeroomDefault && m.SubjectIsHomeroomDefault {
		body["homeroom_sync"] = service.SyncHomeroomClassrooms(ctl.DB, &m)
	}
	return helper.JsonUpdated(c, "subject updated", body)
}

/* =========================================================
   DELETE /api/a/subjects/:id
========================================================= */
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid subject id")
	}

	var m model.SubjectModel
	if err := ctl.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch subject")
	}

	if m.SubjectIsSystemCore {
		return helper.JsonDomainError(c, helper.ErrCannotDeleteSystemCore)
	}

	var inUse int64
	if err := ctl.DB.Model(&classroomModel.ClassroomModel{}).
		Where("classroom_subject_id = ?", id).
		Count(&inUse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check subject usage")
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject is assigned to classrooms")
	}

	if err := ctl.DB.Where("subject_id = ?", id).Delete(&model.SubjectModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete subject")
	}
	return helper.JsonDeleted(c, "subject deleted", fiber.Map{"subject_id": id})
}
