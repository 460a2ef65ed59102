package gateway

// PaymentIntentResponse is the gateway's reply to an intent creation.
type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// ErrorResponse is the gateway's error envelope.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
