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

// FavouritesHandler exposes favourite-mark endpoints.
type FavouritesHandler struct {
	favourites *service.FavouriteService
}

// NewFavouritesHandler constructs handler.
func NewFavouritesHandler(favouriteService *service.FavouriteService) *FavouritesHandler {
	return &FavouritesHandler{favourites: favouriteService}
}

// List handles GET /favourites.
func (h *FavouritesHandler) List(c *fiber.Ctx) error {
	marks, err := h.favourites.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": favouritesJSON(marks)})
}

// ListByEmail handles GET /favourites/by-email/:email.
func (h *FavouritesHandler) ListByEmail(c *fiber.Ctx) error {
	marks, err := h.favourites.ListByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": favouritesJSON(marks)})
}

// Get handles GET /favourites/:id.
func (h *FavouritesHandler) Get(c *fiber.Ctx) error {
	mark, err := h.favourites.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": favouriteJSON(mark)})
}

// Create handles POST /favourites.
func (h *FavouritesHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	var req dto.CreateFavouriteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.BiodataID <= 0 {
		return apperrors.NewValidationError("BiodataId required", nil)
	}

	mark, err := h.favourites.Create(c.Context(), service.FavouriteCreateInput{
		UserEmail:         claims.Email,
		BiodataID:         req.BiodataID,
		BiodataName:       req.BiodataName,
		PermanentDivision: req.PermanentDivision,
		Occupation:        req.Occupation,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": favouriteJSON(mark)})
}

// Delete handles DELETE /favourites/:id.
func (h *FavouritesHandler) Delete(c *fiber.Ctx) error {
	if err := h.favourites.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": 1})
}

func favouritesJSON(marks []domain.Favourite) []fiber.Map {
	result := make([]fiber.Map, 0, len(marks))
	for i := range marks {
		result = append(result, favouriteJSON(&marks[i]))
	}
	return result
}

func favouriteJSON(f *domain.Favourite) fiber.Map {
	return fiber.Map{
		"id":                f.ID,
		"user_email":        f.UserEmail,
		"BiodataId":         f.BiodataID,
		"BiodataName":       f.BiodataName,
		"PermanentDivision": f.PermanentDivision,
		"Occupation":        f.Occupation,
	}
}
