package dto

// CreateBiodataRequest payload for profile submission. The sequence
// number is assigned server-side and never accepted from the client.
type CreateBiodataRequest struct {
	BiodataType        string  `json:"BiodataType"`
	Name               string  `json:"Name"`
	ProfileImage       *string `json:"ProfileImage,omitempty"`
	DateOfBirth        *string `json:"DateOfBirth,omitempty"`
	Age                *int    `json:"Age,omitempty"`
	Occupation         *string `json:"Occupation,omitempty"`
	PermanentDivision  *string `json:"PermanentDivision,omitempty"`
	ExpectedPartnerAge *string `json:"ExpectedPartnerAge,omitempty"`
	ContactEmail       string  `json:"ContactEmail"`
	MobileNumber       *string `json:"MobileNumber,omitempty"`
}
