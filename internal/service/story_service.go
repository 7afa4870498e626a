package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/events"
	"github.com/spec-kit/matrimony-service/internal/repository"
)

// StoryCreateInput captures a success-story submission.
type StoryCreateInput struct {
	SelfBiodataID    *int64
	PartnerBiodataID *int64
	CoupleImage      *string
	MarriageDate     *string
	Review           *string
}

// StoryService handles success stories.
type StoryService struct {
	stories    repository.SuccessStoryRepository
	dispatcher events.Dispatcher
}

// NewStoryService builds the service.
func NewStoryService(stories repository.SuccessStoryRepository, dispatcher events.Dispatcher) *StoryService {
	return &StoryService{stories: stories, dispatcher: dispatcher}
}

// Create publishes a new success story.
func (s *StoryService) Create(ctx context.Context, input StoryCreateInput) (*domain.SuccessStory, error) {
	story := &domain.SuccessStory{
		SelfBiodataID:    input.SelfBiodataID,
		PartnerBiodataID: input.PartnerBiodataID,
		CoupleImage:      input.CoupleImage,
		MarriageDate:     input.MarriageDate,
		Review:           input.Review,
	}
	if err := s.stories.Create(ctx, story); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStoryPublished,
			Subject:   story.ID,
			Timestamp: time.Now(),
			Payload: events.StoryPublishedPayload{
				StoryID:       story.ID,
				SelfBiodataID: story.SelfBiodataID,
			},
		})
	}
	return story, nil
}

// List returns every success story, newest first.
func (s *StoryService) List(ctx context.Context) ([]domain.SuccessStory, error) {
	return s.stories.List(ctx)
}

// Delete removes a success story.
func (s *StoryService) Delete(ctx context.Context, id string) error {
	return s.stories.Delete(ctx, id)
}
