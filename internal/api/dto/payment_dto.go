package dto

// CreateIntentRequest payload for opening a payment intent.
type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

// CreateIntentResponse carries the processor's confirmation token.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest payload for recording a completed payment.
type RecordPaymentRequest struct {
	BiodataID   *int64 `json:"BiodataId,omitempty"`
	AmountCents int64  `json:"amount_cents"`
}
