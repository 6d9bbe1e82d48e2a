package handlers

import (
	"fmt"
	"time"

	config "github.com/alphadev-tn/stage_manager/configs"
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
	"github.com/alphadev-tn/stage_manager/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthHandler struct {
	users  *repository.UserRepository
	tokens *repository.RefreshTokenRepository
}

func NewAuthHandler(users *repository.UserRepository, tokens *repository.RefreshTokenRepository) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login checks the bcrypt hash and hands back a short-lived access token
// plus a persisted, revocable refresh token. Which of username/password was
// wrong is never revealed.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}
	if err := validate.Struct(req); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	user, err := h.users.FindByUsername(req.Username)
	if err != nil {
		return utils.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return utils.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password", nil)
	}

	accessToken, err := h.signAccessToken(user)
	if err != nil {
		return utils.JsonError(c, fiber.StatusInternalServerError, "Failed to create token", err)
	}
	refreshToken, err := h.issueRefreshToken(user)
	if err != nil {
		return utils.JsonError(c, fiber.StatusInternalServerError, "Failed to create token", err)
	}

	return utils.JsonOK(c, "Login successful", fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

type RefreshRequest struct {
	Token string `json:"token"`
}

// Refresh rotates a refresh token: the presented one is revoked and a fresh
// pair is issued.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}
	if req.Token == "" {
		return utils.JsonError(c, fiber.StatusUnauthorized, "Refresh token is required", nil)
	}

	stored, err := h.tokens.FindValid(req.Token)
	if err != nil {
		return utils.JsonError(c, fiber.StatusForbidden, "Invalid refresh token", nil)
	}
	user, err := h.users.GetByID(stored.UserID)
	if err != nil {
		return utils.JsonError(c, fiber.StatusForbidden, "Invalid refresh token", nil)
	}

	if err := h.tokens.Revoke(stored.ID); err != nil {
		return utils.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate token", err)
	}

	accessToken, err := h.signAccessToken(user)
	if err != nil {
		return utils.JsonError(c, fiber.StatusInternalServerError, "Failed to create token", err)
	}
	refreshToken, err := h.issueRefreshToken(user)
	if err != nil {
		return utils.JsonError(c, fiber.StatusInternalServerError, "Failed to create token", err)
	}

	return utils.JsonOK(c, "Token refreshed", fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Logout revokes the presented refresh token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}
	if req.Token == "" {
		return utils.JsonError(c, fiber.StatusUnauthorized, "Refresh token is required", nil)
	}

	stored, err := h.tokens.FindValid(req.Token)
	if err != nil {
		return utils.JsonError(c, fiber.StatusForbidden, "Invalid refresh token", nil)
	}
	if err := h.tokens.Revoke(stored.ID); err != nil {
		return utils.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token", err)
	}
	return utils.JsonOK(c, "Logged out", nil)
}

func (h *AuthHandler) signAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      fmt.Sprint(user.UserID),
		"user_id":  user.UserID,
		"username": user.Username,
		"exp":      time.Now().Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("ACCESS_TOKEN_SECRET")))
}

func (h *AuthHandler) issueRefreshToken(user *models.User) (string, error) {
	id := uuid.New()
	expiresAt := time.Now().Add(refreshTokenTTL)

	claims := jwt.MapClaims{
		"sub": fmt.Sprint(user.UserID),
		"jti": id.String(),
		"exp": expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Config("ACCESS_TOKEN_SECRET")))
	if err != nil {
		return "", err
	}

	record := models.RefreshToken{
		ID:        id,
		UserID:    user.UserID,
		Token:     signed,
		ExpiresAt: expiresAt,
	}
	if err := h.tokens.Create(&record); err != nil {
		return "", err
	}
	return signed, nil
}
