package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/matrimony-service/internal/api/dto"
	"github.com/spec-kit/matrimony-service/internal/auth"
	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/service"
	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

// PremiumHandler exposes premium-request endpoints.
type PremiumHandler struct {
	premium *service.PremiumService
}

// NewPremiumHandler constructs handler.
func NewPremiumHandler(premiumService *service.PremiumService) *PremiumHandler {
	return &PremiumHandler{premium: premiumService}
}

// List handles GET /premium-requests.
func (h *PremiumHandler) List(c *fiber.Ctx) error {
	requests, err := h.premium.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": premiumRequestsJSON(requests)})
}

// ListByEmail handles GET /premium-requests/by-email/:email.
func (h *PremiumHandler) ListByEmail(c *fiber.Ctx) error {
	requests, err := h.premium.ListByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": premiumRequestsJSON(requests)})
}

// Get handles GET /premium-requests/:id.
func (h *PremiumHandler) Get(c *fiber.Ctx) error {
	request, err := h.premium.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": premiumRequestJSON(request)})
}

// Create handles POST /premium-requests.
func (h *PremiumHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	var req dto.CreatePremiumRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	request, err := h.premium.Create(c.Context(), service.PremiumRequestInput{
		Email:     claims.Email,
		BiodataID: req.BiodataID,
		Name:      req.Name,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": premiumRequestJSON(request)})
}

// Approve handles PATCH /premium-requests/approve/:id.
func (h *PremiumHandler) Approve(c *fiber.Ctx) error {
	if err := h.premium.Approve(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"modifiedCount": 1})
}

// Delete handles DELETE /premium-requests/:id.
func (h *PremiumHandler) Delete(c *fiber.Ctx) error {
	if err := h.premium.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": 1})
}

func premiumRequestsJSON(requests []domain.PremiumRequest) []fiber.Map {
	result := make([]fiber.Map, 0, len(requests))
	for i := range requests {
		result = append(result, premiumRequestJSON(&requests[i]))
	}
	return result
}

func premiumRequestJSON(r *domain.PremiumRequest) fiber.Map {
	return fiber.Map{
		"id":        r.ID,
		"email":     r.Email,
		"BiodataId": r.BiodataID,
		"name":      r.Name,
		"tier":      r.Tier,
	}
}
