// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearRoute "schoolhub_backend/internals/features/school/academic_years/route"
	classroomRoute "schoolhub_backend/internals/features/school/classrooms/route"
	dashboardRoute "schoolhub_backend/internals/features/school/dashboard/route"
	enrollmentRoute "schoolhub_backend/internals/features/school/enrollments/route"
	parentRoute "schoolhub_backend/internals/features/school/parents/route"
	roomRoute "schoolhub_backend/internals/features/school/rooms/route"
	schoolRoute "schoolhub_backend/internals/features/school/schools/route"
	studentServiceRoute "schoolhub_backend/internals/features/school/student_services/route"
	studentRoute "schoolhub_backend/internals/features/school/students/route"
	subjectRoute "schoolhub_backend/internals/features/school/subjects/route"
	authRoute "schoolhub_backend/internals/features/users/auth/route"
	userRoute "schoolhub_backend/internals/features/users/user/route"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes mounts four surfaces: public auth endpoints, the
// authenticated /api/u group, the teacher-scoped /api/t group, and
// the admin-only /api/a group.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	schoolRoute.SchoolUserRoutes(user, db)
	yearRoute.AcademicYearUserRoutes(user, db)
	studentRoute.StudentUserRoutes(user, db)
	subjectRoute.SubjectUserRoutes(user, db)
	roomRoute.RoomUserRoutes(user, db)
	classroomRoute.ClassroomUserRoutes(user, db)
	enrollmentRoute.EnrollmentUserRoutes(user, db)
	studentServiceRoute.StudentServiceUserRoutes(user, db)
	parentRoute.ParentUserRoutes(user, db)

	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t", authMiddleware.AuthMiddleware(db), authMiddleware.OnlyTeacher(db))
	classroomRoute.ClassroomTeacherRoutes(teacher, db)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db), authMiddleware.OnlyAdmin(db))
	userRoute.UserAdminRoutes(admin, db)
	schoolRoute.SchoolAdminRoutes(admin, db)
	yearRoute.AcademicYearAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	roomRoute.RoomAdminRoutes(admin, db)
	classroomRoute.ClassroomAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	studentServiceRoute.StudentServiceAdminRoutes(admin, db)
	parentRoute.ParentAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)

	log.Println("[INFO] All routes mounted")
}
