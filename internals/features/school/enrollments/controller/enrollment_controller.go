// file: internals/features/school/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classroomModel "schoolhub_backend/internals/features/school/classrooms/model"
	"schoolhub_backend/internals/features/school/enrollments/dto"
	"schoolhub_backend/internals/features/school/enrollments/model"
	"schoolhub_backend/internals/features/school/enrollments/service"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	helper "schoolhub_backend/internals/helpers"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *EnrollmentController) bindAndValidate(c *fiber.Ctx, dst any) error {
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
   GET /api/u/enrollments
   Query: ?student_id, ?classroom_id, ?is_active (default true,
   "all" disables the filter)
========================================================= */
func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.EnrollmentModel{}).Order("enrollment_created_at DESC")

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("enrollment_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("classroom_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom_id")
		}
		q = q.Where("enrollment_classroom_id = ?", id)
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("is_active"))) {
	case "all":
		// no filter
	case "false":
		q = q.Where("enrollment_is_active = FALSE")
	default:
		q = q.Where("enrollment_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count enrollments")
	}

	var enrollments []model.EnrollmentModel
	if err := q.Limit(p.PerPage).Offset(p.Offset).Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list enrollments")
	}
	return helper.JsonList(c, "enrollments fetched", enrollments,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================================================
   GET /api/u/enrollments/:id
========================================================= */
func (ctl *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	var m model.EnrollmentModel
	if err := ctl.DB.First(&m, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonDomainError(c, helper.ErrNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch enrollment")
	}

	detail := dto.EnrollmentWithDetails{EnrollmentModel: m}
	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", m.EnrollmentStudentID).Error; err == nil {
		detail.StudentName = student.FullName()
	}
	var classroom classroomModel.ClassroomModel
	if err := ctl.DB.First(&classroom, "classroom_id = ?", m.EnrollmentClassroomID).Error; err == nil {
		detail.ClassroomName = classroom.ClassroomName
	}
	return helper.JsonOK(c, "enrollment fetched", detail)
}

/* =========================================================
   POST /api/u/enrollments
   The whole admission decision runs in one transaction with
   the classroom row locked, so two concurrent requests for
   the last seat serialize: the first one fills the seat, the
   second sees the updated count and gets ClassroomFull. The
   partial unique index on active (student, classroom) is the
   backstop for the duplicate check.
========================================================= */
func (ctl *EnrollmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	enrolledBy, _ := helper.GetUserIDFromToken(c)

	m := &model.EnrollmentModel{
		EnrollmentStudentID:             req.StudentID,
		EnrollmentClassroomID:           req.ClassroomID,
		EnrollmentGradeLevel:            req.GradeLevel,
		EnrollmentStatus:                req.EnrollmentStatus,
		EnrollmentIsActive:              true,
		EnrollmentIsAuditOnly:           req.IsAuditOnly,
		EnrollmentRequiresAccommodation: req.RequiresAccommodation,
	}
	if req.EnrollmentDate != nil {
		m.EnrollmentDate = *req.EnrollmentDate
	} else {
		m.EnrollmentDate = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if enrolledBy != uuid.Nil {
		m.EnrollmentEnrolledBy = &enrolledBy
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var studentCount int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", req.StudentID).
			Count(&studentCount).Error; err != nil {
			return err
		}
		if studentCount == 0 {
			return helper.ErrNotFound
		}

		// Lock the classroom row for the duration of the decision.
		var classroom classroomModel.ClassroomModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&classroom, "classroom_id = ?", req.ClassroomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound
			}
			return err
		}
		if classroom.ClassroomAcademicYearID != uuid.Nil {
			m.EnrollmentAcademicYearID = &classroom.ClassroomAcademicYearID
		}

		var dup int64
		if err := tx.Model(&model.EnrollmentModel{}).
			Where("enrollment_student_id = ? AND enrollment_classroom_id = ? AND enrollment_is_active = TRUE",
				req.StudentID, req.ClassroomID).
			Count(&dup).Error; err != nil {
			return err
		}
		var active int64
		if err := tx.Model(&model.EnrollmentModel{}).
			Where("enrollment_classroom_id = ? AND enrollment_is_active = TRUE", req.ClassroomID).
			Count(&active).Error; err != nil {
			return err
		}
		if err := service.CheckAdmission(classroom.ClassroomMaxStudents, active, dup); err != nil {
			return err
		}

		return tx.Create(m).Error
	})
	if txErr != nil {
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonDomainError(c, helper.ErrDuplicateActiveEnrollment)
		}
		if errors.Is(txErr, helper.ErrNotFound) ||
			errors.Is(txErr, helper.ErrDuplicateActiveEnrollment) ||
			errors.Is(txErr, helper.ErrClassroomFull) {
			return helper.JsonDomainError(c, txErr)
		}
		log.Println("[ERROR] create enrollment:", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create enrollment")
	}
	return helper.JsonCreated(c, "enrollment created", m)
}

/* =========================================================
   PATCH /api/a/enrollments/:id
========================================================= */
func (ctl *EnrollmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	var req dto.UpdateEnrollmentRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.EnrollmentModel
	if err := ctl.DB.First(&m, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonDomainError(c, helper.ErrNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch enrollment")
	}

	req.ApplyUpdates(&m)
	// Withdrawal through the generic update path still deactivates and
	// stamps the date, but never overwrites a date supplied earlier.
	if m.EnrollmentStatus == model.StatusWithdrawn {
		m.Withdraw(nil, nil)
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update enrollment")
	}
	return helper.JsonUpdated(c, "enrollment updated", m)
}

/* =========================================================
   POST /api/a/enrollments/:id/withdraw
========================================================= */
func (ctl *EnrollmentController) Withdraw(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	var req dto.WithdrawRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.EnrollmentModel
	if err := ctl.DB.First(&m, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonDomainError(c, helper.ErrNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch enrollment")
	}

	m.Withdraw(req.WithdrawalDate, req.WithdrawalReason)

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to withdraw enrollment")
	}
	return helper.JsonUpdated(c, "enrollment withdrawn", m)
}

/* =========================================================
   POST /api/a/enrollments/:id/reactivate
   Only a WITHDRAWN enrollment changes; anything else is a
   silent no-op so retries stay safe. Reactivation re-runs
   the capacity check, the seat may have been taken since.
========================================================= */
func (ctl *EnrollmentController) Reactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	var m model.EnrollmentModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "enrollment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound
			}
			return err
		}
		if !m.IsWithdrawn() {
			return nil
		}

		var classroom classroomModel.ClassroomModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&classroom, "classroom_id = ?", m.EnrollmentClassroomID).Error; err != nil {
			return err
		}
		var active int64
		if err := tx.Model(&model.EnrollmentModel{}).
			Where("enrollment_classroom_id = ? AND enrollment_is_active = TRUE", m.EnrollmentClassroomID).
			Count(&active).Error; err != nil {
			return err
		}
		if err := service.CheckAdmission(classroom.ClassroomMaxStudents, active, 0); err != nil {
			return err
		}

		m.Reactivate()
		return tx.Save(&m).Error
	})
	if txErr != nil {
		if errors.Is(txErr, helper.ErrNotFound) || errors.Is(txErr, helper.ErrClassroomFull) {
			return helper.JsonDomainError(c, txErr)
		}
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonDomainError(c, helper.ErrDuplicateActiveEnrollment)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reactivate enrollment")
	}
	return helper.JsonUpdated(c, "enrollment reactivated", m)
}

/* =========================================================
   DELETE /api/a/enrollments/:id
   Delete is a withdrawal with an implicit reason; nothing is
   ever removed from the table.
========================================================= */
func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	var m model.EnrollmentModel
	if err := ctl.DB.First(&m, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonDomainError(c, helper.ErrNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch enrollment")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	m.Withdraw(&today, nil)
	if m.EnrollmentWithdrawalReason == nil {
		reason := "Removed by administrator"
		m.EnrollmentWithdrawalReason = &reason
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete enrollment")
	}
	return helper.JsonDeleted(c, "enrollment removed", fiber.Map{"enrollment_id": id})
}

/* =========================================================
   GET /api/u/enrollments/students/:studentId
========================================================= */
func (ctl *EnrollmentController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var studentCount int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", studentID).
		Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check student")
	}
	if studentCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}

	q := ctl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_student_id = ?", studentID).
		Order("enrollment_created_at DESC")
	if v := strings.TrimSpace(c.Query("academic_year_id")); v != "" {
		yearID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic_year_id")
		}
		q = q.Where("enrollment_academic_year_id = ?", yearID)
	}

	var enrollments []model.EnrollmentModel
	if err := q.Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list student enrollments")
	}
	return helper.JsonOK(c, "student enrollments fetched", enrollments)
}

/* =========================================================
   GET /api/u/enrollments/classrooms/:classroomId/students
   The roster read goes through the same join the capacity
   check counts, so what admins see matches what the engine
   enforces.
========================================================= */
func (ctl *EnrollmentController) Roster(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("classroomId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	var classroom classroomModel.ClassroomModel
	if err := ctl.DB.First(&classroom, "classroom_id = ?", classroomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check classroom")
	}

	q := ctl.DB.Model(&model.EnrollmentModel{}).
		Select(`students.student_id,
			students.student_code,
			students.student_first_name AS first_name,
			students.student_last_name AS last_name,
			students.student_current_grade_level AS current_grade_level,
			enrollments.enrollment_id,
			enrollments.enrollment_date,
			enrollments.enrollment_status,
			enrollments.enrollment_is_active AS is_active,
			enrollments.enrollment_requires_accommodation AS requires_accommodation`).
		Joins("JOIN students ON students.student_id = enrollments.enrollment_student_id").
		Where("enrollments.enrollment_classroom_id = ?", classroomID).
		Order("students.student_last_name ASC, students.student_first_name ASC")
	if c.QueryBool("active_only", true) {
		q = q.Where("enrollments.enrollment_is_active = TRUE")
	}

	var roster []dto.RosterStudent
	if err := q.Scan(&roster).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch classroom roster")
	}
	return helper.JsonListEx(c, "classroom roster fetched", roster, nil, fiber.Map{
		"classroom": fiber.Map{
			"classroom_id":           classroom.ClassroomID,
			"classroom_name":         classroom.ClassroomName,
			"classroom_grade_level":  classroom.ClassroomGradeLevel,
			"classroom_max_students": classroom.ClassroomMaxStudents,
		},
	})
}
