package payment

// RecordPaymentRequest is the payload for POST /payments.
type RecordPaymentRequest struct {
	ParcelID      uint    `json:"parcelId"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
}

// CreateIntentRequest is the payload for POST /create-payment-intent.
type CreateIntentRequest struct {
	AmountInCents int64 `json:"amountInCents"`
}

// CreateIntentResponse carries the gateway's client-side confirmation token.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
