// file: internals/features/admins/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"feedesk_backend/internals/configs"
	dto "feedesk_backend/internals/features/admins/dto"
	adminModel "feedesk_backend/internals/features/admins/model"
	helper "feedesk_backend/internals/helpers"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	DB *gorm.DB
}

/* =========================
   Login (POST /api/auth/login)
========================= */

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var admin adminModel.Admin
	err := h.DB.WithContext(c.Context()).
		Where("admin_email = ?", in.Email).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.AdminPasswordHash), []byte(in.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": admin.AdminID.String(),
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonOK(c, "login success", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(tokenTTL.Seconds()),
	})
}
