package domain

import "time"

// Order records a completed checkout. The order id doubles as the
// idempotency key sent to the payment provider.
type Order struct {
	ID            string           `json:"id"`
	UserEmail     string           `json:"userEmail"`
	Lines         []PricedLineItem `json:"lines"`
	Total         int64            `json:"total"`
	PaymentStatus int              `json:"paymentStatus"`
	EmailStatus   int              `json:"emailStatus"`
	CreatedAt     time.Time        `json:"createdAt"`
}
