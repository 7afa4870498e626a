package domain

import "time"

// PaymentStatus tracks contact-request approval state.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
)

// Payment records a paid contact request for a profile.
type Payment struct {
	ID          string
	Email       string
	BiodataID   *int64
	AmountCents int64
	Status      PaymentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
