package dto

// CreateFavouriteRequest payload for favourite-marking. The owning
// account comes from the verified credential, not the body.
type CreateFavouriteRequest struct {
	BiodataID         int64   `json:"BiodataId"`
	BiodataName       *string `json:"BiodataName,omitempty"`
	PermanentDivision *string `json:"PermanentDivision,omitempty"`
	Occupation        *string `json:"Occupation,omitempty"`
}
