package domain

import "time"

// Favourite marks one profile as a favourite of one account. At most one
// mark may exist per (user email, biodata sequence number) pair.
type Favourite struct {
	ID                string
	UserEmail         string
	BiodataID         int64
	BiodataName       *string
	PermanentDivision *string
	Occupation        *string
	CreatedAt         time.Time
}
