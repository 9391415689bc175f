package model

// Payment is the payment record returned by the payment API.
type Payment struct {
	ID             string  `json:"id"`
	AmountInRiyals float64 `json:"amount_in_riyals"`
	Status         string  `json:"status"`
	Description    string  `json:"description"`
	PaidAt         string  `json:"paid_at,omitempty"`
}

// PaymentSource references a card token minted by the client-side
// tokenization widget. Raw card data never reaches this layer.
type PaymentSource struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// CreatePaymentRequest is the POST /api/create-payment/ payload.
// Amount is in halalas.
type CreatePaymentRequest struct {
	Amount        int           `json:"amount"`
	Description   string        `json:"description"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone"`
	Source        PaymentSource `json:"source"`
}

// PaymentEnvelope wraps payment API responses.
type PaymentEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Payment *Payment `json:"payment,omitempty"`
}
