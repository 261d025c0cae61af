// file: internals/features/school/dashboard/controller/dashboard_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearModel "schoolhub_backend/internals/features/school/academic_years/model"
	classroomModel "schoolhub_backend/internals/features/school/classrooms/model"
	enrollmentModel "schoolhub_backend/internals/features/school/enrollments/model"
	roomModel "schoolhub_backend/internals/features/school/rooms/model"
	schoolModel "schoolhub_backend/internals/features/school/schools/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type roleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type recentUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

/* =========================================================
   GET /api/a/dashboard/overview
   Global totals plus activity counts scoped to the active
   academic year. Missing active year zeroes the year block
   instead of failing the whole overview.
========================================================= */
func (ctl *DashboardController) AdminOverview(c *fiber.Ctx) error {
	var totalUsers, totalSchools, totalStudents int64
	if err := ctl.DB.Model(&userModel.UserModel{}).Count(&totalUsers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count users")
	}
	if err := ctl.DB.Model(&schoolModel.SchoolModel{}).Count(&totalSchools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count schools")
	}
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_is_active = TRUE").
		Count(&totalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}

	var roles []roleCount
	if err := ctl.DB.Table("user_school_roles").
		Select("user_school_role_role AS role, COUNT(*) AS count").
		Where("user_school_role_is_active = TRUE AND user_school_role_deleted_at IS NULL").
		Group("user_school_role_role").
		Order("user_school_role_role ASC").
		Scan(&roles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to summarize roles")
	}

	var latest []userModel.UserModel
	if err := ctl.DB.Order("user_created_at DESC").Limit(5).Find(&latest).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list recent users")
	}
	recent := make([]recentUser, 0, len(latest))
	for _, u := range latest {
		recent = append(recent, recentUser{
			ID:       u.UserID.String(),
			Name:     u.FullName(),
			Email:    u.UserEmail,
			IsActive: u.UserIsActive,
		})
	}

	activeYear := fiber.Map{
		"academic_year": nil,
		"classrooms":    0,
		"enrollments":   0,
		"rooms_in_use":  0,
	}
	var year yearModel.AcademicYearModel
	err := ctl.DB.First(&year, "academic_year_is_active = TRUE").Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch active year")
	}
	if err == nil {
		var classrooms, enrollments, roomsInUse int64
		if err := ctl.DB.Model(&classroomModel.ClassroomModel{}).
			Where("classroom_academic_year_id = ? AND classroom_is_active = TRUE", year.AcademicYearID).
			Count(&classrooms).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count classrooms")
		}
		if err := ctl.DB.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_academic_year_id = ? AND enrollment_is_active = TRUE", year.AcademicYearID).
			Count(&enrollments).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count enrollments")
		}
		if err := ctl.DB.Model(&roomModel.RoomModel{}).
			Where("room_is_active = TRUE").
			Where("room_id IN (?)", ctl.DB.Model(&classroomModel.ClassroomModel{}).
				Select("classroom_room_id").
				Where("classroom_room_id IS NOT NULL AND classroom_is_active = TRUE AND classroom_academic_year_id = ?",
					year.AcademicYearID)).
			Count(&roomsInUse).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count rooms in use")
		}
		activeYear = fiber.Map{
			"academic_year": year,
			"classrooms":    classrooms,
			"enrollments":   enrollments,
			"rooms_in_use":  roomsInUse,
		}
	}

	return helper.JsonOK(c, "dashboard overview fetched", fiber.Map{
		"total_users":    totalUsers,
		"total_schools":  totalSchools,
		"total_students": totalStudents,
		"roles_summary":  roles,
		"recent_users":   recent,
		"active_year":    activeYear,
	})
}
