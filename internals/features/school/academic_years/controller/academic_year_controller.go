// file: internals/features/school/academic_years/controller/academic_year_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolhub_backend/internals/features/school/academic_years/dto"
	"schoolhub_backend/internals/features/school/academic_years/model"
	"schoolhub_backend/internals/features/school/academic_years/service"
	helper "schoolhub_backend/internals/helpers"
)

type AcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicYearController(db *gorm.DB) *AcademicYearController {
	return &AcademicYearController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *AcademicYearController) bindAndValidate(c *fiber.Ctx, dst any) error {
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
   GET /api/u/academic-years
========================================================= */
func (ctl *AcademicYearController) List(c *fiber.Ctx) error {
	var years []model.AcademicYearModel
	if err := ctl.DB.Order("academic_year_start_date DESC").Find(&years).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list academic years")
	}
	return helper.JsonOK(c, "academic years fetched", years)
}

/* =========================================================
   GET /api/u/academic-years/active
========================================================= */
func (ctl *AcademicYearController) GetActive(c *fiber.Ctx) error {
	var year model.AcademicYearModel
	if err := ctl.DB.First(&year, "academic_year_is_active = TRUE").Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonDomainError(c, helper.ErrNoActiveYear)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch active year")
	}
	return helper.JsonOK(c, "active academic year fetched", year)
}

/* =========================================================
   POST /api/a/academic-years
   Creating with is_active=true deactivates every other year
   in the same transaction.
========================================================= */
func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	var req dto.CreateAcademicYearRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := service.ValidateYearName(req.AcademicYearName); err != nil {
		return helper.JsonDomainError(c, err)
	}
	if !req.AcademicYearEndDate.After(req.AcademicYearStartDate) {
		return helper.JsonDomainError(c, helper.ErrInvalidDateRange)
	}

	shortName := service.ShortName(req.AcademicYearName)
	if req.AcademicYearShortName != nil && *req.AcademicYearShortName != "" {
		shortName = *req.AcademicYearShortName
	}

	m := req.ToModel(shortName)
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.AcademicYearModel{}).
			Where("academic_year_name = ?", req.AcademicYearName).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return helper.ErrDuplicateName
		}
		if m.AcademicYearIsActive {
			if err := tx.Model(&model.AcademicYearModel{}).
				Where("academic_year_is_active = TRUE").
				Update("academic_year_is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonDomainError(c, helper.ErrDuplicateName)
		}
		if errors.Is(err, helper.ErrDuplicateName) {
			return helper.JsonDomainError(c, err)
		}
		log.Println("[ERROR] create academic year:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create academic year")
	}
	return helper.JsonCreated(c, "academic year created", m)
}

/* =========================================================
   PATCH /api/a/academic-years/:id/activate
   Deactivate-all + activate-one inside one transaction so
   two concurrent activations cannot leave two active rows.
========================================================= */
func (ctl *AcademicYearController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic year id")
	}

	var year model.AcademicYearModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&year, "academic_year_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.AcademicYearModel{}).
			Where("academic_year_is_active = TRUE").
			Update("academic_year_is_active", false).Error; err != nil {
			return err
		}
		year.AcademicYearIsActive = true
		return tx.Model(&model.AcademicYearModel{}).
			Where("academic_year_id = ?", id).
			Update("academic_year_is_active", true).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "academic year not found")
		}
		log.Println("[ERROR] activate academic year:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to activate academic year")
	}
	return helper.JsonUpdated(c, "academic year activated", year)
}

/* =========================================================
   PATCH /api/a/academic-years/:id
========================================================= */
func (ctl *AcademicYearController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic year id")
	}

	var req dto.UpdateAcademicYearRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.AcademicYearModel
	if err := ctl.DB.First(&m, "academic_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "academic year not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch academic year")
	}

	req.ApplyUpdates(&m)
	if !m.AcademicYearEndDate.After(m.AcademicYearStartDate) {
		return helper.JsonDomainError(c, helper.ErrInvalidDateRange)
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update academic year")
	}
	return helper.JsonUpdated(c, "academic year updated", m)
}
