// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	yearModel "schoolhub_backend/internals/features/school/academic_years/model"
	schoolModel "schoolhub_backend/internals/features/school/schools/model"
	"schoolhub_backend/internals/features/school/students/dto"
	"schoolhub_backend/internals/features/school/students/model"
	"schoolhub_backend/internals/features/school/students/service"
	helper "schoolhub_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *StudentController) bindAndValidate(c *fiber.Ctx, dst any) error {
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

// nextStudentCode feeds the generator with the school's existing codes. Must
// be called on the transaction that will insert the row, so the school's
// students are locked against a concurrent generator run.
func nextStudentCode(tx *gorm.DB, schoolID uuid.UUID) (string, error) {
	var codes []string
	if err := tx.Model(&model.StudentModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_school_id = ? AND student_code <> ''", schoolID).
		Pluck("student_code", &codes).Error; err != nil {
		return "", err
	}

	var school schoolModel.SchoolModel
	if err := tx.First(&school, "school_id = ?", schoolID).Error; err != nil {
		return "", err
	}
	return service.NextStudentID(codes, school.SchoolName), nil
}

/* =========================================================
   GET /api/a/students
   Query: ?school_id=, ?q=, ?is_active=, paging
========================================================= */
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.StudentModel{})
	if v := strings.TrimSpace(c.Query("school_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid school id")
		}
		q = q.Where("student_school_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ? OR LOWER(student_code) LIKE ?",
			like, like, like,
		)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		q = q.Where("student_is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}

	var students []model.StudentModel
	if err := q.Order("student_last_name ASC, student_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list students")
	}

	return helper.JsonList(c, "students fetched", students,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================================================
   GET /api/a/students/next-id?school_id=
   Preview of the next generated code. Advisory only; the
   authoritative generation happens inside Create.
========================================================= */
func (ctl *StudentController) NextID(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Query("school_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school id")
	}

	var codes []string
	if err := ctl.DB.Model(&model.StudentModel{}).
		Where("student_school_id = ? AND student_code <> ''", schoolID).
		Pluck("student_code", &codes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to scan student codes")
	}
	var school schoolModel.SchoolModel
	if err := ctl.DB.First(&school, "school_id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "school not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch school")
	}

	return helper.JsonOK(c, "next student id", fiber.Map{
		"student_code": service.NextStudentID(codes, school.SchoolName),
	})
}

/* =========================================================
   GET /api/u/students/:id
========================================================= */
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch student")
	}
	return helper.JsonOK(c, "student fetched", m)
}

/* =========================================================
   POST /api/a/students
   Code generation and the duplicate checks run inside one
   transaction; the partial unique index on (school, code)
   backstops the race anyway.
========================================================= */
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m *model.StudentModel
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&schoolModel.SchoolModel{}).
			Where("school_id = ?", req.StudentSchoolID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return helper.ErrNotFound
		}

		code := ""
		if req.StudentCode != nil && *req.StudentCode != "" {
			code = *req.StudentCode
			var dup int64
			if err := tx.Model(&model.StudentModel{}).
				Where("student_school_id = ? AND student_code = ?", req.StudentSchoolID, code).
				Count(&dup).Error; err != nil {
				return err
			}
			if dup > 0 {
				return helper.ErrDuplicateStudentID
			}
		} else {
			generated, err := nextStudentCode(tx, req.StudentSchoolID)
			if err != nil {
				return err
			}
			code = generated
		}

		if req.StudentEmail != nil && *req.StudentEmail != "" {
			var dup int64
			if err := tx.Model(&model.StudentModel{}).
				Where("student_email = ?", *req.StudentEmail).
				Count(&dup).Error; err != nil {
				return err
			}
			if dup > 0 {
				return helper.ErrDuplicateName
			}
		}

		m = req.ToModel(code)
		return tx.Create(m).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "school not found")
		case errors.Is(err, helper.ErrDuplicateStudentID):
			return helper.JsonDomainError(c, err)
		case errors.Is(err, helper.ErrDuplicateName):
			return helper.JsonError(c, fiber.StatusConflict, "email already exists")
		case helper.IsUniqueViolation(err):
			return helper.JsonDomainError(c, helper.ErrDuplicateStudentID)
		default:
			log.Println("[ERROR] create student:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create student")
		}
	}
	return helper.JsonCreated(c, "student created", m)
}

/* =========================================================
   PATCH /api/a/students/:id
========================================================= */
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch student")
	}

	if req.StudentCode != nil && *req.StudentCode != m.StudentCode {
		var dup int64
		if err := ctl.DB.Model(&model.StudentModel{}).
			Where("student_school_id = ? AND student_code = ? AND student_id <> ?",
				m.StudentSchoolID, *req.StudentCode, id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check student code")
		}
		if dup > 0 {
			return helper.JsonDomainError(c, helper.ErrDuplicateStudentID)
		}
	}
	if req.StudentEmail != nil && (m.StudentEmail == nil || *req.StudentEmail != *m.StudentEmail) {
		var dup int64
		if err := ctl.DB.Model(&model.StudentModel{}).
			Where("student_email = ? AND student_id <> ?", *req.StudentEmail, id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check email")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "email already exists")
		}
	}

	req.ApplyUpdates(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonDomainError(c, helper.ErrDuplicateStudentID)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update student")
	}
	return helper.JsonUpdated(c, "student updated", m)
}

/* =========================================================
   DELETE /api/a/students/:id  (soft: is_active=false)
========================================================= */
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	res := ctl.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Update("student_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to deactivate student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	return helper.JsonDeleted(c, "student deactivated", fiber.Map{"student_id": id})
}

/* =========================================================
   POST /api/a/students/:id/promote
   Promotion and graduation-deactivation are one transition:
   both columns change in the same locked transaction.
========================================================= */
func (ctl *StudentController) Promote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var resp dto.PromoteResponse
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var m model.StudentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "student_id = ?", id).Error; err != nil {
			return err
		}

		from := m.StudentCurrentGradeLevel
		next, outcome := service.PromoteGrade(from)

		resp = dto.PromoteResponse{
			StudentID:    m.StudentID,
			FromGrade:    from,
			ToGrade:      next,
			StudentState: m.StudentIsActive,
		}

		switch outcome {
		case service.OutcomeHeldBack:
			resp.Outcome = "held_back"
			return nil // grade outside the table: no-op, not an error
		case service.OutcomeGraduated:
			resp.Outcome = "graduated"
			resp.StudentState = false
			return tx.Model(&model.StudentModel{}).
				Where("student_id = ?", id).
				Updates(map[string]any{
					"student_current_grade_level": next,
					"student_is_active":           false,
				}).Error
		default:
			resp.Outcome = "promoted"
			return tx.Model(&model.StudentModel{}).
				Where("student_id = ?", id).
				Update("student_current_grade_level", next).Error
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		log.Println("[ERROR] promote student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to promote student")
	}
	return helper.JsonUpdated(c, "promotion applied", resp)
}

/* =========================================================
   POST /api/a/students/promotions/bulk
   Partial-success batch: each student is attempted on its
   own; failures are classified, never abort the batch.
========================================================= */
func (ctl *StudentController) BulkPromote(c *fiber.Ctx) error {
	var req dto.BulkPromoteRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var n int64
	if err := ctl.DB.Model(&yearModel.AcademicYearModel{}).
		Where("academic_year_id = ?", req.TargetAcademicYearID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check academic year")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "target academic year not found")
	}

	q := ctl.DB.Model(&model.StudentModel{}).Where("student_is_active = TRUE")
	if req.GradeFilter != nil && *req.GradeFilter != "" {
		q = q.Where("student_current_grade_level = ?", *req.GradeFilter)
	}

	var ids []uuid.UUID
	if err := q.Order("student_last_name ASC, student_first_name ASC").
		Pluck("student_id", &ids).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list students")
	}

	resp := dto.BulkPromoteResponse{
		GraduatedNames: []string{},
		HeldBackNames:  []string{},
	}
	for _, id := range ids {
		err := ctl.DB.Transaction(func(tx *gorm.DB) error {
			var m model.StudentModel
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&m, "student_id = ?", id).Error; err != nil {
				return err
			}

			next, outcome := service.PromoteGrade(m.StudentCurrentGradeLevel)
			switch outcome {
			case service.OutcomeHeldBack:
				resp.HeldBackNames = append(resp.HeldBackNames, m.FullName())
				return nil
			case service.OutcomeGraduated:
				resp.GraduatedNames = append(resp.GraduatedNames, m.FullName())
				return tx.Model(&model.StudentModel{}).
					Where("student_id = ?", id).
					Updates(map[string]any{
						"student_current_grade_level": next,
						"student_is_active":           false,
					}).Error
			default:
				resp.PromotedCount++
				return tx.Model(&model.StudentModel{}).
					Where("student_id = ?", id).
					Update("student_current_grade_level", next).Error
			}
		})
		if err != nil {
			log.Printf("[WARN] bulk promote skipped student %s: %v", id, err)
		}
	}

	return helper.JsonOK(c, "bulk promotion finished", resp)
}

/* =========================================================
   GET /api/u/students/:id/academic-records
========================================================= */
func (ctl *StudentController) AcademicRecords(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var n int64
	if err := ctl.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check student")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}

	var records []model.StudentAcademicRecordModel
	if err := ctl.DB.
		Where("student_academic_record_student_id = ?", id).
		Order("student_academic_record_enrollment_date DESC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch academic records")
	}
	return helper.JsonOK(c, "academic records fetched", records)
}
