package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/matrimony-service/internal/api/dto"
	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/service"
	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	accounts *service.AccountService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService) *UsersHandler {
	return &UsersHandler{accounts: accounts}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.accounts.List(c.Context())
	if err != nil {
		return err
	}

	result := make([]fiber.Map, 0, len(users))
	for i := range users {
		result = append(result, userJSON(&users[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

// AdminStatus handles GET /users/admin/:email.
func (h *UsersHandler) AdminStatus(c *fiber.Ctx) error {
	admin, err := h.accounts.IsAdmin(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admin": admin})
}

// Register handles POST /users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Name == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}

	user, created, err := h.accounts.Register(c.Context(), req.Name, req.Email, req.PhotoURL)
	if err != nil {
		return err
	}
	if !created {
		return c.JSON(fiber.Map{"message": "user already exists", "insertedId": nil})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userJSON(user)})
}

// PromoteAdmin handles PATCH /users/admin/:id.
func (h *UsersHandler) PromoteAdmin(c *fiber.Ctx) error {
	if err := h.accounts.PromoteAdmin(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"modifiedCount": 1})
}

// PromotePremium handles PATCH /users/premium/:id.
func (h *UsersHandler) PromotePremium(c *fiber.Ctx) error {
	if err := h.accounts.PromotePremium(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"modifiedCount": 1})
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.accounts.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": 1})
}

func userJSON(user *domain.User) fiber.Map {
	return fiber.Map{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"photo_url": user.PhotoURL,
		"role":      user.Role,
		"tier":      user.Tier,
	}
}
