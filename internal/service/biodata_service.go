package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/events"
	"github.com/spec-kit/matrimony-service/internal/repository"
	apperrors "github.com/spec-kit/matrimony-service/pkg/util"
)

// BiodataCreateInput captures a profile submission.
type BiodataCreateInput struct {
	Type               domain.BiodataType
	Name               string
	ProfileImage       *string
	DateOfBirth        *string
	Age                *int
	Occupation         *string
	PermanentDivision  *string
	ExpectedPartnerAge *string
	ContactEmail       string
	MobileNumber       *string
}

// BiodataService coordinates profile creation through the sequence allocator.
type BiodataService struct {
	biodata    repository.BiodataRepository
	counters   repository.CounterRepository
	dispatcher events.Dispatcher
}

// NewBiodataService builds the service.
func NewBiodataService(biodata repository.BiodataRepository, counters repository.CounterRepository, dispatcher events.Dispatcher) *BiodataService {
	return &BiodataService{biodata: biodata, counters: counters, dispatcher: dispatcher}
}

// Create allocates the next sequence number and inserts the profile.
// The number is assigned before the insert is issued and is immutable
// afterwards; deleted profiles never release their numbers.
func (s *BiodataService) Create(ctx context.Context, input BiodataCreateInput) (*domain.Biodata, error) {
	seq, err := s.counters.Next(ctx, repository.BiodataCounter)
	if err != nil {
		return nil, apperrors.NewAllocationFailed(err)
	}

	biodata := &domain.Biodata{
		BiodataID:          seq,
		Type:               input.Type,
		Name:               input.Name,
		ProfileImage:       input.ProfileImage,
		DateOfBirth:        input.DateOfBirth,
		Age:                input.Age,
		Occupation:         input.Occupation,
		PermanentDivision:  input.PermanentDivision,
		ExpectedPartnerAge: input.ExpectedPartnerAge,
		ContactEmail:       input.ContactEmail,
		MobileNumber:       input.MobileNumber,
	}
	if err := s.biodata.Create(ctx, biodata); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventProfileCreated,
			Subject:   biodata.ContactEmail,
			Timestamp: time.Now(),
			Payload: events.ProfileCreatedPayload{
				BiodataID:    biodata.BiodataID,
				Type:         biodata.Type,
				ContactEmail: biodata.ContactEmail,
			},
		})
	}
	return biodata, nil
}

// GetByID looks a profile up by its store identifier.
func (s *BiodataService) GetByID(ctx context.Context, id string) (*domain.Biodata, error) {
	return s.biodata.GetByID(ctx, id)
}

// List returns profiles matching the browse filter.
func (s *BiodataService) List(ctx context.Context, filter repository.BiodataFilter) ([]domain.Biodata, error) {
	return s.biodata.List(ctx, filter)
}

// Delete removes a profile; its sequence number is not reclaimed.
func (s *BiodataService) Delete(ctx context.Context, id string) error {
	return s.biodata.Delete(ctx, id)
}
