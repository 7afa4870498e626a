package dto

// CreateStoryRequest payload for publishing a success story.
type CreateStoryRequest struct {
	SelfBiodataID    *int64  `json:"selfBiodataId,omitempty"`
	PartnerBiodataID *int64  `json:"partnerBiodataId,omitempty"`
	CoupleImage      *string `json:"coupleImage,omitempty"`
	MarriageDate     *string `json:"marriageDate,omitempty"`
	Review           *string `json:"review,omitempty"`
}
