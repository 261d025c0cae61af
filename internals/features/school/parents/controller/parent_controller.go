// file: internals/features/school/parents/controller/parent_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/parents/dto"
	"schoolhub_backend/internals/features/school/parents/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type ParentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *ParentController) bindAndValidate(c *fiber.Ctx, dst any) error {
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
   GET /api/a/parents
========================================================= */
func (ctl *ParentController) List(c *fiber.Ctx) error {
	var parents []model.ParentModel
	if err := ctl.DB.Model(&model.ParentModel{}).
		Joins("JOIN users ON users.user_id = parents.parent_user_id").
		Order("users.user_last_name ASC, users.user_first_name ASC").
		Find(&parents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list parents")
	}

	out := make([]dto.ParentWithUser, 0, len(parents))
	for _, p := range parents {
		d := dto.ParentWithUser{ParentModel: p}
		var u userModel.UserModel
		if err := ctl.DB.First(&u, "user_id = ?", p.ParentUserID).Error; err == nil {
			d.FullName = u.FullName()
			d.Email = u.UserEmail
		}
		out = append(out, d)
	}
	return helper.JsonOK(c, "parents fetched", out)
}

/* =========================================================
   POST /api/a/parents
   Reuses an existing user account when the email matches,
   otherwise creates one; either way the user ends up with
   exactly one parent profile.
========================================================= */
func (ctl *ParentController) Create(c *fiber.Ctx) error {
	var req dto.CreateParentRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var parent *model.ParentModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var user userModel.UserModel
		err := tx.First(&user, "user_email = ?", req.Email).Error
		switch {
		case err == nil:
			var existing int64
			if err := tx.Model(&model.ParentModel{}).
				Where("parent_user_id = ?", user.UserID).
				Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				return errors.New("user already has a parent profile")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if req.Password == "" {
				return errors.New("password is required when creating a new parent account")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user = userModel.UserModel{
				UserEmail:     req.Email,
				UserPassword:  string(hash),
				UserFirstName: req.FirstName,
				UserLastName:  req.LastName,
				UserIsActive:  true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		default:
			return err
		}

		emergency := true
		if req.EmergencyContact != nil {
			emergency = *req.EmergencyContact
		}
		pickup := true
		if req.PickupAuthorized != nil {
			pickup = *req.PickupAuthorized
		}
		parent = &model.ParentModel{
			ParentUserID:                 user.UserID,
			ParentRelationshipType:       req.RelationshipType,
			ParentEmergencyContact:       emergency,
			ParentPickupAuthorized:       pickup,
			ParentPreferredContactMethod: req.PreferredContactMethod,
		}
		return tx.Create(parent).Error
	})
	if txErr != nil {
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "user already has a parent profile")
		}
		log.Println("[ERROR] create parent:", txErr)
		return helper.JsonError(c, fiber.StatusBadRequest, txErr.Error())
	}
	return helper.JsonCreated(c, "parent created", parent)
}

/* =========================================================
   GET /api/u/parents/:id/students
========================================================= */
func (ctl *ParentController) ListStudents(c *fiber.Ctx) error {
	parentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid parent id")
	}

	var relationships []model.ParentStudentRelationshipModel
	if err := ctl.DB.
		Where("parent_student_parent_id = ? AND parent_student_is_active = TRUE", parentID).
		Order("parent_student_created_at ASC").
		Find(&relationships).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list parent students")
	}

	out := make([]dto.RelationshipWithStudent, 0, len(relationships))
	for _, rel := range relationships {
		d := dto.RelationshipWithStudent{ParentStudentRelationshipModel: rel}
		var s studentModel.StudentModel
		if err := ctl.DB.First(&s, "student_id = ?", rel.ParentStudentStudentID).Error; err == nil {
			d.StudentName = s.FullName()
			d.StudentCode = s.StudentCode
		}
		out = append(out, d)
	}
	return helper.JsonOK(c, "parent students fetched", out)
}

/* =========================================================
   GET /api/u/parents/students/:studentId/emergency-contacts
   Ordered by priority, 1 gets called first.
========================================================= */
func (ctl *ParentController) EmergencyContacts(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var relationships []model.ParentStudentRelationshipModel
	if err := ctl.DB.
		Where("parent_student_student_id = ? AND parent_student_is_emergency_contact = TRUE AND parent_student_is_active = TRUE",
			studentID).
		Order("parent_student_emergency_priority ASC").
		Find(&relationships).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list emergency contacts")
	}
	return helper.JsonOK(c, "emergency contacts fetched", relationships)
}

/* =========================================================
   POST /api/a/parents/relationships
========================================================= */
func (ctl *ParentController) CreateRelationship(c *fiber.Ctx) error {
	var req dto.CreateRelationshipRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var n int64
	if err := ctl.DB.Model(&model.ParentModel{}).
		Where("parent_id = ?", req.ParentID).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check parent")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "parent not found")
	}
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", req.StudentID).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check student")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "student not found")
	}

	var dup int64
	if err := ctl.DB.Model(&model.ParentStudentRelationshipModel{}).
		Where("parent_student_parent_id = ? AND parent_student_student_id = ? AND parent_student_is_active = TRUE",
			req.ParentID, req.StudentID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check relationship")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "parent-student relationship already exists")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Println("[ERROR] create parent-student relationship:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create relationship")
	}
	return helper.JsonCreated(c, "relationship created", m)
}
