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

// PaymentsHandler exposes payment endpoints.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: paymentService}
}

// CreateIntent handles POST /payments/create-intent.
func (h *PaymentsHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Price <= 0 {
		return apperrors.NewValidationError("price must be positive", nil)
	}

	clientSecret, err := h.payments.CreateIntent(c.Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(dto.CreateIntentResponse{ClientSecret: clientSecret})
}

// List handles GET /payments.
func (h *PaymentsHandler) List(c *fiber.Ctx) error {
	records, err := h.payments.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": paymentsJSON(records)})
}

// ListByEmail handles GET /payments/by-email/:email.
func (h *PaymentsHandler) ListByEmail(c *fiber.Ctx) error {
	records, err := h.payments.ListByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": paymentsJSON(records)})
}

// Record handles POST /payments.
func (h *PaymentsHandler) Record(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.AmountCents <= 0 {
		return apperrors.NewValidationError("amount_cents must be positive", nil)
	}

	payment, err := h.payments.Record(c.Context(), service.PaymentRecordInput{
		Email:       claims.Email,
		BiodataID:   req.BiodataID,
		AmountCents: req.AmountCents,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": paymentJSON(payment)})
}

// Approve handles PATCH /payments/approve/:id.
func (h *PaymentsHandler) Approve(c *fiber.Ctx) error {
	if err := h.payments.ApproveContact(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"modifiedCount": 1})
}

// Delete handles DELETE /payments/:id.
func (h *PaymentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.payments.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": 1})
}

func paymentsJSON(records []domain.Payment) []fiber.Map {
	result := make([]fiber.Map, 0, len(records))
	for i := range records {
		result = append(result, paymentJSON(&records[i]))
	}
	return result
}

func paymentJSON(p *domain.Payment) fiber.Map {
	return fiber.Map{
		"id":           p.ID,
		"email":        p.Email,
		"BiodataId":    p.BiodataID,
		"amount_cents": p.AmountCents,
		"status":       p.Status,
	}
}
