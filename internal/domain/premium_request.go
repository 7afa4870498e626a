package domain

import "time"

// PremiumRequest asks an admin to elevate a profile to the premium tier.
type PremiumRequest struct {
	ID        string
	Email     string
	BiodataID *int64
	Name      *string
	Tier      Tier
	CreatedAt time.Time
	UpdatedAt time.Time
}
