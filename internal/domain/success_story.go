package domain

import "time"

// SuccessStory is a married couple's review, referenced by sequence numbers.
type SuccessStory struct {
	ID               string
	SelfBiodataID    *int64
	PartnerBiodataID *int64
	CoupleImage      *string
	MarriageDate     *string
	Review           *string
	CreatedAt        time.Time
}
