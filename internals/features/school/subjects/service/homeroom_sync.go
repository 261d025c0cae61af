// file: internals/features/school/subjects/service/homeroom_sync.go
package service

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	yearModel "schoolhub_backend/internals/features/school/academic_years/model"
	classroomModel "schoolhub_backend/internals/features/school/classrooms/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

// SyncResult summarizes one reconciliation run. Warning is set when the run
// was skipped or failed; the triggering subject write already succeeded.
type SyncResult struct {
	CreatedClassrooms int    `json:"created_classrooms"`
	SkippedTeachers   int    `json:"skipped_teachers"`
	Warning           string `json:"warning,omitempty"`
}

// SyncHomeroomClassrooms reacts to a non-system-core subject's homeroom
// default flag flipping to true: every teacher holding an active elementary
// (K-5) assignment in the active year receives a classroom for the subject,
// unless they already have one (idempotent). All writes happen in one
// transaction; any failure rolls the whole run back and is reported as a
// warning, never as an error.
//
// A flip to false creates nothing and deletes nothing; existing classrooms
// keep their history.
func SyncHomeroomClassrooms(db *gorm.DB, subject *subjectModel.SubjectModel) SyncResult {
	var res SyncResult

	var activeYear yearModel.AcademicYearModel
	if err := db.First(&activeYear, "academic_year_is_active = TRUE").Error; err != nil {
		res.Warning = "no active academic year; homeroom sync skipped"
		log.Printf("[WARN] homeroom sync for %s: %s", subject.SubjectName, res.Warning)
		return res
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Teachers with an active assignment on any K-5 classroom this year.
		var teacherIDs []string
		if err := tx.Model(&classroomModel.TeacherAssignmentModel{}).
			Distinct("teacher_assignment_teacher_user_id").
			Joins("JOIN classrooms ON classrooms.classroom_id = classroom_teacher_assignments.teacher_assignment_classroom_id").
			Where("classrooms.classroom_grade_level IN ?", constants.ElementaryGrades).
			Where("classrooms.classroom_academic_year_id = ?", activeYear.AcademicYearID).
			Where("teacher_assignment_is_active = TRUE").
			Pluck("teacher_assignment_teacher_user_id", &teacherIDs).Error; err != nil {
			return err
		}
		if len(teacherIDs) == 0 {
			res.Warning = "no elementary homeroom teachers found; nothing to sync"
			return nil
		}

		for _, teacherID := range teacherIDs {
			// Skip teachers who already carry this subject in this year.
			var n int64
			if err := tx.Model(&classroomModel.TeacherAssignmentModel{}).
				Joins("JOIN classrooms ON classrooms.classroom_id = classroom_teacher_assignments.teacher_assignment_classroom_id").
				Where("classrooms.classroom_subject_id = ?", subject.SubjectID).
				Where("classrooms.classroom_academic_year_id = ?", activeYear.AcademicYearID).
				Where("teacher_assignment_teacher_user_id = ?", teacherID).
				Where("teacher_assignment_is_active = TRUE").
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				res.SkippedTeachers++
				continue
			}

			var teacher userModel.UserModel
			if err := tx.First(&teacher, "user_id = ?", teacherID).Error; err != nil {
				res.SkippedTeachers++
				continue
			}

			// Grade level from any of the teacher's current classrooms.
			var gradeLevel string
			if err := tx.Model(&classroomModel.ClassroomModel{}).
				Joins("JOIN classroom_teacher_assignments ON classroom_teacher_assignments.teacher_assignment_classroom_id = classrooms.classroom_id").
				Where("classroom_teacher_assignments.teacher_assignment_teacher_user_id = ?", teacherID).
				Where("classrooms.classroom_academic_year_id = ?", activeYear.AcademicYearID).
				Where("classroom_teacher_assignments.teacher_assignment_is_active = TRUE").
				Limit(1).
				Pluck("classrooms.classroom_grade_level", &gradeLevel).Error; err != nil {
				return err
			}
			if gradeLevel == "" {
				res.SkippedTeachers++
				continue
			}

			classroom := &classroomModel.ClassroomModel{
				ClassroomName: fmt.Sprintf("%s %s's Grade %s - %s",
					teacher.UserFirstName, teacher.UserLastName, gradeLevel, subject.SubjectName),
				ClassroomSubjectID:      subject.SubjectID,
				ClassroomAcademicYearID: activeYear.AcademicYearID,
				ClassroomGradeLevel:     gradeLevel,
				ClassroomType:           subjectModel.SubjectTypeCore,
				ClassroomMaxStudents:    classroomModel.DefaultMaxStudents,
				ClassroomIsActive:       true,
			}
			if err := tx.Create(classroom).Error; err != nil {
				return err
			}

			startDate := activeYear.AcademicYearStartDate
			assignment := &classroomModel.TeacherAssignmentModel{
				TeacherAssignmentClassroomID:   classroom.ClassroomID,
				TeacherAssignmentTeacherUserID: teacher.UserID,
				TeacherAssignmentRoleName:      classroomModel.RolePrimaryTeacher,
				TeacherAssignmentStartDate:     &startDate,
				TeacherAssignmentIsActive:      true,
			}
			assignment.FullDefaultPermissions()
			if err := tx.Create(assignment).Error; err != nil {
				return err
			}
			res.CreatedClassrooms++
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] homeroom sync for %s rolled back: %v", subject.SubjectName, err)
		return SyncResult{Warning: "homeroom sync failed and was rolled back"}
	}
	if res.Warning != "" {
		log.Printf("[WARN] homeroom sync for %s: %s", subject.SubjectName, res.Warning)
	}
	return res
}
