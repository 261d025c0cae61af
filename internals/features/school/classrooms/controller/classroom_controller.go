// file: internals/features/school/classrooms/controller/classroom_controller.go
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

	yearModel "schoolhub_backend/internals/features/school/academic_years/model"
	"schoolhub_backend/internals/features/school/classrooms/dto"
	"schoolhub_backend/internals/features/school/classrooms/model"
	enrollmentModel "schoolhub_backend/internals/features/school/enrollments/model"
	roomModel "schoolhub_backend/internals/features/school/rooms/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type ClassroomController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *ClassroomController) bindAndValidate(c *fiber.Ctx, dst any) error {
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

func (ctl *ClassroomController) enrollmentCounts(classroomIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(classroomIDs))
	if len(classroomIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		ClassroomID uuid.UUID
		N           int64
	}
	if err := ctl.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Select("enrollment_classroom_id AS classroom_id, COUNT(*) AS n").
		Where("enrollment_classroom_id IN ? AND enrollment_is_active = TRUE", classroomIDs).
		Group("enrollment_classroom_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.ClassroomID] = r.N
	}
	return counts, nil
}

/* =========================================================
   GET /api/u/classrooms
   Query: ?academic_year_id, ?subject_id, ?teacher_user_id,
          ?grade_level, ?is_active (default true)
========================================================= */
func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.ClassroomModel{}).Order("classroom_name ASC")

	if v := strings.TrimSpace(c.Query("academic_year_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic_year_id")
		}
		q = q.Where("classroom_academic_year_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("subject_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid subject_id")
		}
		q = q.Where("classroom_subject_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("teacher_user_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid teacher_user_id")
		}
		q = q.Joins(
			"JOIN classroom_teacher_assignments ta ON ta.teacher_assignment_classroom_id = classrooms.classroom_id").
			Where("ta.teacher_assignment_teacher_user_id = ? AND ta.teacher_assignment_is_active = TRUE", id)
	}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("grade_level"))); v != "" {
		q = q.Where("classroom_grade_level = ?", v)
	}
	if strings.ToLower(strings.TrimSpace(c.Query("is_active"))) != "all" {
		q = q.Where("classroom_is_active = TRUE")
	}

	var classrooms []model.ClassroomModel
	if err := q.Find(&classrooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list classrooms")
	}

	ids := make([]uuid.UUID, 0, len(classrooms))
	for _, cr := range classrooms {
		ids = append(ids, cr.ClassroomID)
	}
	counts, err := ctl.enrollmentCounts(ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count enrollments")
	}

	out := make([]dto.ClassroomWithDetails, 0, len(classrooms))
	for _, cr := range classrooms {
		out = append(out, dto.ClassroomWithDetails{
			ClassroomModel:  cr,
			EnrollmentCount: counts[cr.ClassroomID],
		})
	}
	return helper.JsonOK(c, "classrooms fetched", out)
}

/* =========================================================
   GET /api/t/classrooms
   The caller's own classrooms: active assignments for the
   user id in the token.
========================================================= */
func (ctl *ClassroomController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var classrooms []model.ClassroomModel
	if err := ctl.DB.Model(&model.ClassroomModel{}).
		Joins("JOIN classroom_teacher_assignments ta ON ta.teacher_assignment_classroom_id = classrooms.classroom_id").
		Where("ta.teacher_assignment_teacher_user_id = ? AND ta.teacher_assignment_is_active = TRUE", userID).
		Where("classroom_is_active = TRUE").
		Order("classroom_name ASC").
		Find(&classrooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list classrooms")
	}

	ids := make([]uuid.UUID, 0, len(classrooms))
	for _, cr := range classrooms {
		ids = append(ids, cr.ClassroomID)
	}
	counts, err := ctl.enrollmentCounts(ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count enrollments")
	}

	out := make([]dto.ClassroomWithDetails, 0, len(classrooms))
	for _, cr := range classrooms {
		out = append(out, dto.ClassroomWithDetails{
			ClassroomModel:  cr,
			EnrollmentCount: counts[cr.ClassroomID],
		})
	}
	return helper.JsonOK(c, "classrooms fetched", out)
}

/* =========================================================
   GET /api/u/classrooms/:id
========================================================= */
func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	var m model.ClassroomModel
	if err := ctl.DB.First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch classroom")
	}

	detail := dto.ClassroomWithDetails{ClassroomModel: m}

	var subject subjectModel.SubjectModel
	if err := ctl.DB.First(&subject, "subject_id = ?", m.ClassroomSubjectID).Error; err == nil {
		detail.SubjectName = subject.SubjectName
	}
	var year yearModel.AcademicYearModel
	if err := ctl.DB.First(&year, "academic_year_id = ?", m.ClassroomAcademicYearID).Error; err == nil {
		detail.AcademicYearName = year.AcademicYearName
	}
	if m.ClassroomRoomID != nil {
		var room roomModel.RoomModel
		if err := ctl.DB.First(&room, "room_id = ?", *m.ClassroomRoomID).Error; err == nil {
			detail.RoomName = &room.RoomName
		}
	}
	counts, err := ctl.enrollmentCounts([]uuid.UUID{m.ClassroomID})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count enrollments")
	}
	detail.EnrollmentCount = counts[m.ClassroomID]

	assignments, err := ctl.loadAssignments(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list teacher assignments")
	}

	return helper.JsonOK(c, "classroom fetched", fiber.Map{
		"classroom":           detail,
		"teacher_assignments": assignments,
	})
}

func (ctl *ClassroomController) loadAssignments(classroomID uuid.UUID) ([]dto.TeacherAssignmentDetail, error) {
	var assignments []model.TeacherAssignmentModel
	if err := ctl.DB.
		Where("teacher_assignment_classroom_id = ?", classroomID).
		Order("teacher_assignment_created_at ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	out := make([]dto.TeacherAssignmentDetail, 0, len(assignments))
	for _, a := range assignments {
		d := dto.TeacherAssignmentDetail{TeacherAssignmentModel: a}
		var teacher userModel.UserModel
		if err := ctl.DB.First(&teacher, "user_id = ?", a.TeacherAssignmentTeacherUserID).Error; err == nil {
			d.TeacherName = teacher.FullName()
		}
		out = append(out, d)
	}
	return out, nil
}

/* =========================================================
   POST /api/a/classrooms
========================================================= */
func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := ctl.checkReferences(req.ClassroomSubjectID, req.ClassroomAcademicYearID, req.ClassroomRoomID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Println("[ERROR] create classroom:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create classroom")
	}
	return helper.JsonCreated(c, "classroom created", m)
}

func (ctl *ClassroomController) checkReferences(subjectID, yearID uuid.UUID, roomID *uuid.UUID) error {
	var n int64
	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", subjectID).Count(&n).Error; err != nil || n == 0 {
		return errors.New("subject not found")
	}
	if err := ctl.DB.Model(&yearModel.AcademicYearModel{}).
		Where("academic_year_id = ?", yearID).Count(&n).Error; err != nil || n == 0 {
		return errors.New("academic year not found")
	}
	if roomID != nil {
		if err := ctl.DB.Model(&roomModel.RoomModel{}).
			Where("room_id = ?", *roomID).Count(&n).Error; err != nil || n == 0 {
			return errors.New("room not found")
		}
	}
	return nil
}

/* =========================================================
   POST /api/a/classrooms/homeroom
   Convenience path for elementary homerooms. Resolves a
   homeroom-default subject, falls back to any CORE subject,
   then creates classroom + "Homeroom Teacher" assignment in
   one transaction.
========================================================= */
func (ctl *ClassroomController) CreateHomeroom(c *fiber.Ctx) error {
	var req dto.CreateHomeroomRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var teacher userModel.UserModel
	if err := ctl.DB.First(&teacher, "user_id = ?", req.TeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch teacher")
	}

	var year yearModel.AcademicYearModel
	if err := ctl.DB.First(&year, "academic_year_id = ?", req.AcademicYearID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "academic year not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch academic year")
	}

	if req.RoomID != nil {
		var n int64
		if err := ctl.DB.Model(&roomModel.RoomModel{}).
			Where("room_id = ?", *req.RoomID).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check room")
		}
		if n == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "room not found")
		}
	}

	var subject subjectModel.SubjectModel
	err := ctl.DB.Where("subject_is_homeroom_default = TRUE").
		Order("subject_name ASC").First(&subject).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ctl.DB.Where("subject_type = ?", subjectModel.SubjectTypeCore).
			Order("subject_name ASC").First(&subject).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonDomainError(c, helper.ErrNoCoreSubject)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to resolve homeroom subject")
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("%s %s's Grade %s Homeroom",
			teacher.UserFirstName, teacher.UserLastName, req.GradeLevel)
	}
	maxStudents := model.DefaultMaxStudents
	if req.MaxStudents != nil {
		maxStudents = *req.MaxStudents
	}

	classroom := &model.ClassroomModel{
		ClassroomName:           name,
		ClassroomSubjectID:      subject.SubjectID,
		ClassroomAcademicYearID: year.AcademicYearID,
		ClassroomRoomID:         req.RoomID,
		ClassroomGradeLevel:     req.GradeLevel,
		ClassroomType:           "HOMEROOM",
		ClassroomMaxStudents:    maxStudents,
		ClassroomIsActive:       true,
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(classroom).Error; err != nil {
			return err
		}
		assignment := &model.TeacherAssignmentModel{
			TeacherAssignmentClassroomID:   classroom.ClassroomID,
			TeacherAssignmentTeacherUserID: teacher.UserID,
			TeacherAssignmentRoleName:      model.RoleHomeroomTeacher,
			TeacherAssignmentStartDate:     &year.AcademicYearStartDate,
			TeacherAssignmentIsActive:      true,
		}
		assignment.FullDefaultPermissions()
		return tx.Create(assignment).Error
	})
	if txErr != nil {
		log.Println("[ERROR] create homeroom classroom:", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create homeroom classroom")
	}
	return helper.JsonCreated(c, "homeroom classroom created", classroom)
}

/* =========================================================
   PATCH /api/a/classrooms/:id  (PUT is an alias)
========================================================= */
func (ctl *ClassroomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	var req dto.UpdateClassroomRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.ClassroomModel
	if err := ctl.DB.First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch classroom")
	}

	// Room handling is three-state: key absent keeps the current room,
	// empty string clears it, a uuid reassigns after an existence check.
	if req.ClassroomRoomID != nil {
		if v := strings.TrimSpace(*req.ClassroomRoomID); v == "" {
			m.ClassroomRoomID = nil
		} else {
			roomID, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid room id")
			}
			var n int64
			if err := ctl.DB.Model(&roomModel.RoomModel{}).
				Where("room_id = ?", roomID).Count(&n).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check room")
			}
			if n == 0 {
				return helper.JsonError(c, fiber.StatusBadRequest, "room not found")
			}
			m.ClassroomRoomID = &roomID
		}
	}

	req.ApplyUpdates(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update classroom")
	}
	return helper.JsonUpdated(c, "classroom updated", m)
}

/* =========================================================
   DELETE /api/a/classrooms/:id
   Refused while enrollments exist, withdrawn ones included;
   the history would be orphaned.
========================================================= */
func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	var m model.ClassroomModel
	if err := ctl.DB.First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch classroom")
	}

	var n int64
	if err := ctl.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_classroom_id = ?", id).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check enrollments")
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "classroom has enrollments and cannot be deleted")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_assignment_classroom_id = ?", id).
			Delete(&model.TeacherAssignmentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("classroom_id = ?", id).Delete(&model.ClassroomModel{}).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete classroom")
	}
	return helper.JsonDeleted(c, "classroom deleted", fiber.Map{"classroom_id": id})
}

/* =========================================================
   Teacher assignments
========================================================= */

// GET /api/u/classrooms/:id/teachers
func (ctl *ClassroomController) ListTeachers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}
	var n int64
	if err := ctl.DB.Model(&model.ClassroomModel{}).
		Where("classroom_id = ?", id).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check classroom")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
	}
	assignments, err := ctl.loadAssignments(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list teacher assignments")
	}
	return helper.JsonOK(c, "teacher assignments fetched", assignments)
}

// POST /api/a/classrooms/:id/teachers
func (ctl *ClassroomController) AssignTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	var req dto.CreateTeacherAssignmentRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.ClassroomModel
	if err := ctl.DB.First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch classroom")
	}

	var teacherCount int64
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", req.TeacherUserID).Count(&teacherCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check teacher")
	}
	if teacherCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher not found")
	}

	var dup int64
	if err := ctl.DB.Model(&model.TeacherAssignmentModel{}).
		Where("teacher_assignment_classroom_id = ? AND teacher_assignment_teacher_user_id = ? AND teacher_assignment_is_active = TRUE",
			id, req.TeacherUserID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check teacher assignment")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "teacher is already assigned to this classroom")
	}

	assignment := &model.TeacherAssignmentModel{
		TeacherAssignmentClassroomID:          id,
		TeacherAssignmentTeacherUserID:        req.TeacherUserID,
		TeacherAssignmentRoleName:             req.RoleName,
		TeacherAssignmentCanViewGrades:        req.CanViewGrades,
		TeacherAssignmentCanModifyGrades:      req.CanModifyGrades,
		TeacherAssignmentCanTakeAttendance:    req.CanTakeAttendance,
		TeacherAssignmentCanViewParentContact: req.CanViewParentContact,
		TeacherAssignmentStartDate:            req.StartDate,
		TeacherAssignmentIsActive:             true,
	}
	assignment.TeacherAssignmentCanCreateAssignments = req.CanCreateAssignments

	if err := ctl.DB.Create(assignment).Error; err != nil {
		log.Println("[ERROR] assign teacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to assign teacher")
	}
	return helper.JsonCreated(c, "teacher assigned", assignment)
}

// DELETE /api/a/classrooms/:id/teachers/:assignmentId
// Deactivates rather than deletes; history stays queryable.
func (ctl *ClassroomController) UnassignTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	var assignment model.TeacherAssignmentModel
	if err := ctl.DB.First(&assignment,
		"teacher_assignment_id = ? AND teacher_assignment_classroom_id = ?", assignmentID, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "teacher assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch teacher assignment")
	}

	if err := ctl.DB.Model(&assignment).
		Updates(map[string]any{
			"teacher_assignment_is_active": false,
			"teacher_assignment_end_date":  gorm.Expr("CURRENT_DATE"),
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to unassign teacher")
	}
	return helper.JsonDeleted(c, "teacher unassigned", fiber.Map{"teacher_assignment_id": assignmentID})
}
