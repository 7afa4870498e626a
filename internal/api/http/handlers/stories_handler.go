package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/matrimony-service/internal/api/dto"
	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/service"
	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

// StoriesHandler exposes success-story endpoints.
type StoriesHandler struct {
	stories *service.StoryService
}

// NewStoriesHandler constructs handler.
func NewStoriesHandler(storyService *service.StoryService) *StoriesHandler {
	return &StoriesHandler{stories: storyService}
}

// List handles GET /success-stories.
func (h *StoriesHandler) List(c *fiber.Ctx) error {
	stories, err := h.stories.List(c.Context())
	if err != nil {
		return err
	}

	result := make([]fiber.Map, 0, len(stories))
	for i := range stories {
		result = append(result, storyJSON(&stories[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

// Create handles POST /success-stories.
func (h *StoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	story, err := h.stories.Create(c.Context(), service.StoryCreateInput{
		SelfBiodataID:    req.SelfBiodataID,
		PartnerBiodataID: req.PartnerBiodataID,
		CoupleImage:      req.CoupleImage,
		MarriageDate:     req.MarriageDate,
		Review:           req.Review,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": storyJSON(story)})
}

// Delete handles DELETE /success-stories/:id.
func (h *StoriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.stories.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": 1})
}

func storyJSON(s *domain.SuccessStory) fiber.Map {
	return fiber.Map{
		"id":               s.ID,
		"selfBiodataId":    s.SelfBiodataID,
		"partnerBiodataId": s.PartnerBiodataID,
		"coupleImage":      s.CoupleImage,
		"marriageDate":     s.MarriageDate,
		"review":           s.Review,
	}
}
