// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	authmodel "schoolhub_backend/internals/features/users/auth/model"
	"schoolhub_backend/internals/features/users/user/dto"
	"schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *UserController) bindAndValidate(c *fiber.Ctx, dst any) error {
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
   POST /api/a/users
========================================================= */
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var n int64
	if err := ctl.DB.Model(&model.UserModel{}).
		Where("user_email = ?", req.UserEmail).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check email")
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	m := req.ToModel(string(hashed))
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		log.Println("[ERROR] create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create user")
	}
	return helper.JsonCreated(c, "user created", dto.FromModel(m))
}

// grantsFor batches role grants for a set of users into one query.
func (ctl *UserController) grantsFor(userIDs []uuid.UUID) (map[uuid.UUID][]dto.RoleGrantInfo, error) {
	out := make(map[uuid.UUID][]dto.RoleGrantInfo, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	var rows []authmodel.UserSchoolRoleModel
	if err := ctl.DB.
		Where("user_school_role_user_id IN ?", userIDs).
		Order("user_school_role_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.UserSchoolRoleUserID] = append(out[r.UserSchoolRoleUserID], dto.RoleGrantInfo{
			UserSchoolRoleID:       r.UserSchoolRoleID,
			UserSchoolRoleSchoolID: r.UserSchoolRoleSchoolID,
			UserSchoolRoleRole:     r.UserSchoolRoleRole,
			UserSchoolRoleRoleTag:  r.UserSchoolRoleRoleTag,
			UserSchoolRoleIsActive: r.UserSchoolRoleIsActive,
		})
	}
	return out, nil
}

/* =========================================================
   GET /api/a/users
   Query: ?q= (name/email search), ?is_active=, paging
========================================================= */
func (ctl *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.UserModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(user_email) LIKE ? OR LOWER(user_first_name) LIKE ? OR LOWER(user_last_name) LIKE ?",
			like, like, like,
		)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		q = q.Where("user_is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("user_last_name ASC, user_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list users")
	}

	ids := make([]uuid.UUID, 0, len(users))
	for i := range users {
		ids = append(ids, users[i].UserID)
	}
	grants, err := ctl.grantsFor(ids)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load role grants")
	}

	out := make([]dto.UserWithRoles, 0, len(users))
	for i := range users {
		roles := grants[users[i].UserID]
		if roles == nil {
			roles = []dto.RoleGrantInfo{}
		}
		out = append(out, dto.UserWithRoles{
			UserResponse: *dto.FromModel(&users[i]),
			UserRoles:    roles,
		})
	}

	return helper.JsonList(c, "users fetched", out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================================================
   GET /api/a/users/teachers
   Query: ?school_id=
========================================================= */
func (ctl *UserController) ListTeachers(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.UserModel{}).
		Joins("JOIN user_school_roles ON user_school_role_user_id = user_id").
		Where("user_school_role_role_tag = ?", constants.RoleTagTeacher).
		Where("user_school_role_is_active = TRUE AND user_school_role_deleted_at IS NULL").
		Where("user_is_active = TRUE")

	if v := strings.TrimSpace(c.Query("school_id")); v != "" {
		schoolID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid school id")
		}
		q = q.Where("user_school_role_school_id = ?", schoolID)
	}

	var users []model.UserModel
	if err := q.Distinct("users.*").
		Order("user_last_name ASC, user_first_name ASC").
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list teachers")
	}
	return helper.JsonOK(c, "teachers fetched", dto.FromModels(users))
}

/* =========================================================
   GET /api/a/users/:id
========================================================= */
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var m model.UserModel
	if err := ctl.DB.First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}
	grants, err := ctl.grantsFor([]uuid.UUID{m.UserID})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load role grants")
	}
	roles := grants[m.UserID]
	if roles == nil {
		roles = []dto.RoleGrantInfo{}
	}
	return helper.JsonOK(c, "user fetched", dto.UserWithRoles{
		UserResponse: *dto.FromModel(&m),
		UserRoles:    roles,
	})
}

/* =========================================================
   POST /api/a/users/:id/roles  (upsert role grant)
========================================================= */
func (ctl *UserController) GrantRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var req dto.GrantRoleRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var n int64
	if err := ctl.DB.Model(&model.UserModel{}).Where("user_id = ?", id).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check user")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	if err := ctl.DB.Table("schools").
		Where("school_id = ? AND school_deleted_at IS NULL", req.UserSchoolRoleSchoolID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check school")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "school not found")
	}

	// Upsert: reactivate a matching grant instead of stacking duplicates.
	var grant authmodel.UserSchoolRoleModel
	err = ctl.DB.
		Where("user_school_role_user_id = ? AND user_school_role_school_id = ? AND LOWER(user_school_role_role) = LOWER(?)",
			id, req.UserSchoolRoleSchoolID, req.UserSchoolRoleRole).
		First(&grant).Error
	switch {
	case err == nil:
		grant.UserSchoolRoleIsActive = true
		grant.UserSchoolRoleRoleTag = constants.RoleTagFor(req.UserSchoolRoleRole)
		if err := ctl.DB.Save(&grant).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update role grant")
		}
		return helper.JsonUpdated(c, "role grant updated", grant)
	case errors.Is(err, gorm.ErrRecordNotFound):
		grant = authmodel.UserSchoolRoleModel{
			UserSchoolRoleUserID:   id,
			UserSchoolRoleSchoolID: req.UserSchoolRoleSchoolID,
			UserSchoolRoleRole:     req.UserSchoolRoleRole,
			UserSchoolRoleRoleTag:  constants.RoleTagFor(req.UserSchoolRoleRole),
			UserSchoolRoleIsActive: true,
		}
		if err := ctl.DB.Create(&grant).Error; err != nil {
			log.Println("[ERROR] create role grant:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create role grant")
		}
		return helper.JsonCreated(c, "role grant created", grant)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check role grant")
	}
}

/* =========================================================
   DELETE /api/a/users/:id/roles/:roleId  (deactivate grant)
========================================================= */
func (ctl *UserController) RevokeRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	roleID, err := uuid.Parse(c.Params("roleId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid role grant id")
	}

	res := ctl.DB.Model(&authmodel.UserSchoolRoleModel{}).
		Where("user_school_role_id = ? AND user_school_role_user_id = ?", roleID, id).
		Update("user_school_role_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to revoke role grant")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "role grant not found")
	}
	return helper.JsonDeleted(c, "role grant revoked", fiber.Map{"user_school_role_id": roleID})
}

/* =========================================================
   PATCH /api/a/users/:id
========================================================= */
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var m model.UserModel
	if err := ctl.DB.First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}

	if req.UserEmail != nil && *req.UserEmail != m.UserEmail {
		var n int64
		if err := ctl.DB.Model(&model.UserModel{}).
			Where("user_email = ? AND user_id <> ?", *req.UserEmail, id).
			Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check email")
		}
		if n > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
	}

	req.ApplyUpdates(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update user")
	}
	return helper.JsonUpdated(c, "user updated", dto.FromModel(&m))
}

/* =========================================================
   DELETE /api/a/users/:id  (soft delete)
========================================================= */
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	res := ctl.DB.Where("user_id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	return helper.JsonDeleted(c, "user deleted", fiber.Map{"user_id": id})
}
