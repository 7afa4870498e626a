package dto

// CreatePremiumRequest payload for requesting premium access.
type CreatePremiumRequest struct {
	BiodataID *int64  `json:"BiodataId,omitempty"`
	Name      *string `json:"name,omitempty"`
}
