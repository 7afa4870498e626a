package domain

import "time"

// BiodataType distinguishes profile categories.
type BiodataType string

const (
	BiodataTypeMale   BiodataType = "Male"
	BiodataTypeFemale BiodataType = "Female"
)

// Biodata is a searchable matrimonial profile. BiodataID is the
// application-assigned sequence number, unique and strictly increasing,
// independent of the store identifier and immutable once assigned.
type Biodata struct {
	ID                 string
	BiodataID          int64
	Type               BiodataType
	Name               string
	ProfileImage       *string
	DateOfBirth        *string
	Age                *int
	Occupation         *string
	PermanentDivision  *string
	ExpectedPartnerAge *string
	ContactEmail       string
	MobileNumber       *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
