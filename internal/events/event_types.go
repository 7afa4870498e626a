package events

import (
	"time"

	"github.com/spec-kit/matrimony-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProfileCreated  EventType = "profile_created"
	EventContactApproved EventType = "contact_approved"
	EventPremiumGranted  EventType = "premium_granted"
	EventStoryPublished  EventType = "story_published"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ProfileCreatedPayload payload.
type ProfileCreatedPayload struct {
	BiodataID    int64              `json:"biodata_id"`
	Type         domain.BiodataType `json:"biodata_type"`
	ContactEmail string             `json:"contact_email"`
}

// ContactApprovedPayload payload.
type ContactApprovedPayload struct {
	PaymentID string `json:"payment_id"`
}

// PremiumGrantedPayload payload.
type PremiumGrantedPayload struct {
	RequestID string `json:"request_id"`
}

// StoryPublishedPayload payload.
type StoryPublishedPayload struct {
	StoryID       string `json:"story_id"`
	SelfBiodataID *int64 `json:"self_biodata_id,omitempty"`
}
