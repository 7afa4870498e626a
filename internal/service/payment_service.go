package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/events"
	"github.com/spec-kit/matrimony-service/internal/repository"
)

// IntentClient abstracts the payment processor. Creation is a
// pass-through: no retries, no idempotency keys.
type IntentClient interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// PaymentRecordInput captures a completed contact-request payment.
type PaymentRecordInput struct {
	Email       string
	BiodataID   *int64
	AmountCents int64
}

// PaymentService handles payment intents and contact-request records.
type PaymentService struct {
	payments   repository.PaymentRepository
	intents    IntentClient
	currency   string
	dispatcher events.Dispatcher
}

// NewPaymentService builds the service.
func NewPaymentService(payments repository.PaymentRepository, intents IntentClient, currency string, dispatcher events.Dispatcher) *PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{payments: payments, intents: intents, currency: currency, dispatcher: dispatcher}
}

// CreateIntent converts the decimal price to integer minor units and
// delegates to the processor, returning the client confirmation token.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	return s.intents.CreateIntent(ctx, amount, s.currency)
}

// Record persists a contact-request payment.
func (s *PaymentService) Record(ctx context.Context, input PaymentRecordInput) (*domain.Payment, error) {
	payment := &domain.Payment{
		Email:       input.Email,
		BiodataID:   input.BiodataID,
		AmountCents: input.AmountCents,
		Status:      domain.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// List returns every payment record.
func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.List(ctx)
}

// ListByEmail returns the payments made by the given account.
func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	return s.payments.ListByEmail(ctx, email)
}

// ApproveContact marks a contact request approved.
func (s *PaymentService) ApproveContact(ctx context.Context, id string) error {
	if err := s.payments.SetStatus(ctx, id, domain.PaymentStatusApproved); err != nil {
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactApproved,
			Subject:   id,
			Timestamp: time.Now(),
			Payload:   events.ContactApprovedPayload{PaymentID: id},
		})
	}
	return nil
}

// Delete removes a payment record.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.payments.Delete(ctx, id)
}
