// file: internals/features/school/schools/controller/school_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/schools/dto"
	"schoolhub_backend/internals/features/school/schools/model"
	helper "schoolhub_backend/internals/helpers"
)

type SchoolController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *SchoolController) bindAndValidate(c *fiber.Ctx, dst any) error {
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
   GET /api/u/schools
========================================================= */
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	var schools []model.SchoolModel
	if err := ctl.DB.Order("school_name ASC").Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list schools")
	}
	return helper.JsonOK(c, "schools fetched", schools)
}

/* =========================================================
   GET /api/u/schools/:id
========================================================= */
func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school id")
	}

	var m model.SchoolModel
	if err := ctl.DB.First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "school not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch school")
	}
	return helper.JsonOK(c, "school fetched", m)
}

/* =========================================================
   POST /api/a/schools
========================================================= */
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	if !constants.IsAllowedTimezone(req.SchoolTimezone) {
		return helper.JsonError(c, fiber.StatusBadRequest, "timezone is not in the supported list")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Println("[ERROR] create school:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create school")
	}
	return helper.JsonCreated(c, "school created", m)
}

/* =========================================================
   PATCH /api/a/schools/:id
========================================================= */
func (ctl *SchoolController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school id")
	}

	var req dto.UpdateSchoolRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.SchoolTimezone != nil && !constants.IsAllowedTimezone(*req.SchoolTimezone) {
		return helper.JsonError(c, fiber.StatusBadRequest, "timezone is not in the supported list")
	}

	var m model.SchoolModel
	if err := ctl.DB.First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "school not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch school")
	}

	req.ApplyUpdates(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update school")
	}
	return helper.JsonUpdated(c, "school updated", m)
}
