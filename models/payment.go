package models

// PaymentRequest is the body of POST /process-payment/{bookingId}.
// Payment here is a simulation; no gateway is involved.
type PaymentRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// PaymentResult reports the simulated payment outcome and the resulting
// booking transition.
type PaymentResult struct {
	Success       bool   `json:"success"`
	PaymentStatus string `json:"payment_status"`
	BookingStatus string `json:"booking_status"`
	TransactionID string `json:"transaction_id,omitempty"`
}
