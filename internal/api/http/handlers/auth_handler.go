package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/matrimony-service/internal/api/dto"
	"github.com/spec-kit/matrimony-service/internal/auth"
	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

// AuthHandler issues signed credentials.
type AuthHandler struct {
	tokens *auth.TokenManager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// Token handles POST /auth/token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	token, exp, err := h.tokens.GenerateToken(req.Email, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token, ExpiresAt: exp})
}
