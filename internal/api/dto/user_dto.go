package dto

// RegisterUserRequest payload for first registration.
type RegisterUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	PhotoURL *string `json:"photo_url,omitempty"`
}
