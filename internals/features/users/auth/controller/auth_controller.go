// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/auth/dto"
	"schoolhub_backend/internals/features/users/auth/model"
	"schoolhub_backend/internals/features/users/auth/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *AuthController) bindAndValidate(c *fiber.Ctx, dst any) error {
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
   POST /api/auth/register
========================================================= */
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var n int64
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", req.Email).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check email")
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	u := &userModel.UserModel{
		UserEmail:     req.Email,
		UserPassword:  string(hashed),
		UserFirstName: req.FirstName,
		UserLastName:  req.LastName,
		UserIsActive:  true,
	}
	if err := ctl.DB.Create(u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		log.Println("[ERROR] register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to register")
	}

	return helper.JsonCreated(c, "registered", dto.AuthUser{
		ID:        u.UserID,
		Email:     u.UserEmail,
		FirstName: u.UserFirstName,
		LastName:  u.UserLastName,
		IsActive:  u.UserIsActive,
	})
}

/* =========================================================
   POST /api/auth/login
========================================================= */
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var u userModel.UserModel
	err := ctl.DB.First(&u, "user_email = ?", req.Email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) ||
		(err == nil && bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)) != nil) {
		// same message for unknown email and wrong password
		return helper.JsonError(c, fiber.StatusBadRequest, "Incorrect email or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account is deactivated")
	}

	token, err := service.CreateAccessToken(&u)
	if err != nil {
		log.Println("[ERROR] sign token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign token")
	}
	refresh, err := service.CreateRefreshToken(&u)
	if err != nil {
		log.Println("[ERROR] sign refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign token")
	}
	setRefreshCookie(c, refresh)

	now := time.Now().UTC()
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", u.UserID).
		Update("user_last_login_at", now).Error; err != nil {
		log.Println("[WARN] last_login update:", err)
	}

	return helper.JsonOK(c, "login success", dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

/* =========================================================
   POST /api/auth/logout (authed)
========================================================= */
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no token provided")
	}

	entry := &model.TokenBlacklistModel{
		Token:     raw,
		ExpiredAt: service.TokenExpiry(raw),
	}
	if err := ctl.DB.Create(entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to revoke token")
	}

	if refresh := helper.GetRefreshTokenFromCookie(c); refresh != "" {
		revoked := &model.TokenBlacklistModel{
			Token:     refresh,
			ExpiredAt: service.TokenExpiry(refresh),
		}
		if err := ctl.DB.Create(revoked).Error; err != nil {
			log.Println("[WARN] revoke refresh token:", err)
		}
		clearRefreshCookie(c)
	}
	return helper.JsonOK(c, "logged out", nil)
}

/* =========================================================
   POST /api/auth/refresh
   Accepts the refresh cookie (or a body fallback), rotates
   it, and hands out a fresh access token. A used refresh
   token is blacklisted so it cannot be replayed.
========================================================= */
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		var body dto.RefreshRequest
		if err := c.BodyParser(&body); err == nil {
			raw = strings.TrimSpace(body.RefreshToken)
		}
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "no refresh token provided")
	}

	var n int64
	if err := ctl.DB.Model(&model.TokenBlacklistModel{}).
		Where("token = ?", raw).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check token")
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "refresh token revoked")
	}

	userID, err := service.ParseRefreshToken(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid refresh token")
	}

	var u userModel.UserModel
	if err := ctl.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid refresh token")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account is deactivated")
	}

	access, err := service.CreateAccessToken(&u)
	if err != nil {
		log.Println("[ERROR] sign token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign token")
	}
	rotated, err := service.CreateRefreshToken(&u)
	if err != nil {
		log.Println("[ERROR] sign refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign token")
	}

	// the old refresh token dies with this exchange
	used := &model.TokenBlacklistModel{
		Token:     raw,
		ExpiredAt: service.TokenExpiry(raw),
	}
	if err := ctl.DB.Create(used).Error; err != nil {
		log.Println("[WARN] revoke used refresh token:", err)
	}
	setRefreshCookie(c, rotated)

	return helper.JsonOK(c, "token refreshed", dto.TokenResponse{
		AccessToken: access,
		TokenType:   "bearer",
	})
}

func setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/auth",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/auth",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
	})
}

/* =========================================================
   GET /api/auth/me (authed)
========================================================= */
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u userModel.UserModel
	if err := ctl.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"user": dto.AuthUser{
			ID:        u.UserID,
			Email:     u.UserEmail,
			FirstName: u.UserFirstName,
			LastName:  u.UserLastName,
			IsActive:  u.UserIsActive,
		},
	})
}

/* =========================================================
   GET /api/auth/context (authed)
   Roles + schools + active role/school. Creates a default
   preference from the first grant when none exists yet.
========================================================= */
func (ctl *AuthController) Context(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u userModel.UserModel
	if err := ctl.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}

	var roles []model.UserSchoolRoleModel
	if err := ctl.DB.
		Where("user_school_role_user_id = ?", userID).
		Find(&roles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch roles")
	}

	schools := make([]dto.ContextSchool, 0)
	if len(roles) > 0 {
		ids := make([]any, 0, len(roles))
		for _, r := range roles {
			ids = append(ids, r.UserSchoolRoleSchoolID)
		}
		if err := ctl.DB.Table("schools").
			Select("school_id AS id, school_name AS name").
			Where("school_id IN ? AND school_deleted_at IS NULL", ids).
			Scan(&schools).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch schools")
		}
	}

	var pref model.UserRolePreferenceModel
	prefErr := ctl.DB.First(&pref, "user_role_preference_user_id = ?", userID).Error
	if errors.Is(prefErr, gorm.ErrRecordNotFound) && len(roles) > 0 {
		pref = model.UserRolePreferenceModel{
			UserRolePreferenceUserID:   userID,
			UserRolePreferenceRole:     roles[0].UserSchoolRoleRole,
			UserRolePreferenceSchoolID: roles[0].UserSchoolRoleSchoolID,
		}
		if err := ctl.DB.Create(&pref).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create preference")
		}
		prefErr = nil
	}

	resp := dto.ContextResponse{
		User: dto.AuthUser{
			ID:        u.UserID,
			Email:     u.UserEmail,
			FirstName: u.UserFirstName,
			LastName:  u.UserLastName,
			IsActive:  u.UserIsActive,
		},
		Roles:   make([]dto.ContextRole, 0, len(roles)),
		Schools: schools,
	}
	for _, r := range roles {
		resp.Roles = append(resp.Roles, dto.ContextRole{
			Role:     r.UserSchoolRoleRole,
			SchoolID: r.UserSchoolRoleSchoolID,
			IsActive: r.UserSchoolRoleIsActive,
		})
	}
	if prefErr == nil {
		role := pref.UserRolePreferenceRole
		school := pref.UserRolePreferenceSchoolID
		resp.ActiveRole = &role
		resp.ActiveSchool = &school
	}

	return helper.JsonOK(c, "ok", resp)
}

/* =========================================================
   POST /api/auth/preference (authed)
   Upserts the active role+school pair. The pair must match
   one of the user's active grants.
========================================================= */
func (ctl *AuthController) SetPreference(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SetPreferenceRequest
	if err := ctl.bindAndValidate(c, &req); err != nil {
		return err
	}

	var n int64
	if err := ctl.DB.Model(&model.UserSchoolRoleModel{}).
		Where(`user_school_role_user_id = ?
			AND user_school_role_role = ?
			AND user_school_role_school_id = ?
			AND user_school_role_is_active = TRUE`,
			userID, req.Role, req.SchoolID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check role grant")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "User does not have this role at the specified school")
	}

	var pref model.UserRolePreferenceModel
	err = ctl.DB.First(&pref, "user_role_preference_user_id = ?", userID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		pref = model.UserRolePreferenceModel{
			UserRolePreferenceUserID:   userID,
			UserRolePreferenceRole:     req.Role,
			UserRolePreferenceSchoolID: req.SchoolID,
		}
		if err := ctl.DB.Create(&pref).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save preference")
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch preference")
	default:
		pref.UserRolePreferenceRole = req.Role
		pref.UserRolePreferenceSchoolID = req.SchoolID
		if err := ctl.DB.Save(&pref).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save preference")
		}
	}

	return helper.JsonOK(c, "preference saved", fiber.Map{
		"active_role":   pref.UserRolePreferenceRole,
		"active_school": pref.UserRolePreferenceSchoolID,
	})
}
