package stripe

// PaymentIntentRequest represents the parameters for creating a payment intent
type PaymentIntentRequest struct {
	// Amount is the intent amount in the smallest currency unit (cents)
	Amount int64

	// Currency overrides the client's configured currency when set
	Currency string

	// Metadata is attached to the intent for reconciliation
	Metadata map[string]string
}

// PaymentIntent represents a Stripe payment intent
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// ErrorResponse represents a Stripe API error payload
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
