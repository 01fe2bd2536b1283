package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/support-portal/backend/internal/apperr"
	"github.com/support-portal/backend/internal/auth"
	"github.com/support-portal/backend/internal/config"
	"github.com/support-portal/backend/internal/http/dto"
	"github.com/support-portal/backend/internal/repositories"
)

type AuthHandler struct {
	staffRepo *repositories.StaffRepo
	cfg       *config.Config
	log       *zap.Logger
}

func NewAuthHandler(staffRepo *repositories.StaffRepo, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{staffRepo: staffRepo, cfg: cfg, log: log}
}

// Login exchanges staff credentials for a JWT. Every failure mode answers
// with the same generic message, leaking nothing about which field was
// wrong.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.staffRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		h.log.Debug("login lookup failed", zap.Error(err))
		return respondError(c, apperr.ErrInvalidCredentials)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return respondError(c, apperr.ErrInvalidCredentials)
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Email, user.Role, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.AuthResponse{Token: token, Email: user.Email, Role: user.Role})
}
