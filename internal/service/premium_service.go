package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/events"
	"github.com/spec-kit/matrimony-service/internal/repository"
)

// PremiumRequestInput captures a premium-elevation request.
type PremiumRequestInput struct {
	Email     string
	BiodataID *int64
	Name      *string
}

// PremiumService handles premium-access requests.
type PremiumService struct {
	requests   repository.PremiumRequestRepository
	dispatcher events.Dispatcher
}

// NewPremiumService builds the service.
func NewPremiumService(requests repository.PremiumRequestRepository, dispatcher events.Dispatcher) *PremiumService {
	return &PremiumService{requests: requests, dispatcher: dispatcher}
}

// Create records a new premium request at the standard tier.
func (s *PremiumService) Create(ctx context.Context, input PremiumRequestInput) (*domain.PremiumRequest, error) {
	request := &domain.PremiumRequest{
		Email:     input.Email,
		BiodataID: input.BiodataID,
		Name:      input.Name,
		Tier:      domain.TierStandard,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// GetByID looks a request up by its store identifier.
func (s *PremiumService) GetByID(ctx context.Context, id string) (*domain.PremiumRequest, error) {
	return s.requests.GetByID(ctx, id)
}

// List returns every premium request.
func (s *PremiumService) List(ctx context.Context) ([]domain.PremiumRequest, error) {
	return s.requests.List(ctx)
}

// ListByEmail returns the requests made by the given account.
func (s *PremiumService) ListByEmail(ctx context.Context, email string) ([]domain.PremiumRequest, error) {
	return s.requests.ListByEmail(ctx, email)
}

// Approve elevates the request to the premium tier.
func (s *PremiumService) Approve(ctx context.Context, id string) error {
	if err := s.requests.SetTier(ctx, id, domain.TierPremium); err != nil {
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPremiumGranted,
			Subject:   id,
			Timestamp: time.Now(),
			Payload:   events.PremiumGrantedPayload{RequestID: id},
		})
	}
	return nil
}

// Delete removes a premium request.
func (s *PremiumService) Delete(ctx context.Context, id string) error {
	return s.requests.Delete(ctx, id)
}
