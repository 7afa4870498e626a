package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/matrimony-service/internal/api/dto"
	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/repository"
	"github.com/spec-kit/matrimony-service/internal/service"
	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

// BiodataHandler exposes profile endpoints.
type BiodataHandler struct {
	biodata *service.BiodataService
}

// NewBiodataHandler constructs handler.
func NewBiodataHandler(biodataService *service.BiodataService) *BiodataHandler {
	return &BiodataHandler{biodata: biodataService}
}

// List handles GET /biodatas.
func (h *BiodataHandler) List(c *fiber.Ctx) error {
	return h.list(c, repository.BiodataFilter{})
}

// Filtered handles GET /biodatas/filtered?type=&limit=.
func (h *BiodataHandler) Filtered(c *fiber.Ctx) error {
	filter := repository.BiodataFilter{}
	if t := c.Query("type"); t != "" {
		biodataType := domain.BiodataType(t)
		filter.Type = &biodataType
	}
	if l := c.Query("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil || limit < 0 {
			return apperrors.NewValidationError("invalid limit", nil)
		}
		filter.Limit = limit
	}
	return h.list(c, filter)
}

// Get handles GET /biodatas/:id and GET /checkout/:id.
func (h *BiodataHandler) Get(c *fiber.Ctx) error {
	biodata, err := h.biodata.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": biodataJSON(biodata)})
}

// Create handles POST /biodatas.
func (h *BiodataHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBiodataRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.BiodataType == "" || req.Name == "" || req.ContactEmail == "" {
		return apperrors.NewValidationError("BiodataType, Name, ContactEmail required", nil)
	}

	biodata, err := h.biodata.Create(c.Context(), service.BiodataCreateInput{
		Type:               domain.BiodataType(req.BiodataType),
		Name:               req.Name,
		ProfileImage:       req.ProfileImage,
		DateOfBirth:        req.DateOfBirth,
		Age:                req.Age,
		Occupation:         req.Occupation,
		PermanentDivision:  req.PermanentDivision,
		ExpectedPartnerAge: req.ExpectedPartnerAge,
		ContactEmail:       req.ContactEmail,
		MobileNumber:       req.MobileNumber,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": biodataJSON(biodata)})
}

// Delete handles DELETE /biodatas/:id.
func (h *BiodataHandler) Delete(c *fiber.Ctx) error {
	if err := h.biodata.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": 1})
}

func (h *BiodataHandler) list(c *fiber.Ctx, filter repository.BiodataFilter) error {
	profiles, err := h.biodata.List(c.Context(), filter)
	if err != nil {
		return err
	}

	result := make([]fiber.Map, 0, len(profiles))
	for i := range profiles {
		result = append(result, biodataJSON(&profiles[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

func biodataJSON(b *domain.Biodata) fiber.Map {
	return fiber.Map{
		"id":                 b.ID,
		"BiodataId":          b.BiodataID,
		"BiodataType":        b.Type,
		"Name":               b.Name,
		"ProfileImage":       b.ProfileImage,
		"DateOfBirth":        b.DateOfBirth,
		"Age":                b.Age,
		"Occupation":         b.Occupation,
		"PermanentDivision":  b.PermanentDivision,
		"ExpectedPartnerAge": b.ExpectedPartnerAge,
		"ContactEmail":       b.ContactEmail,
		"MobileNumber":       b.MobileNumber,
	}
}
