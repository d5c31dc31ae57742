package events

import "time"

const PaymentApprovedTopic = "ems.payment.approved.v1"

type PaymentApprovedEvent struct {
	EventType     string    `json:"event_type"`
	PaymentID     string    `json:"payment_id"`
	Email         string    `json:"email"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Amount        int64     `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	ApprovedBy    string    `json:"approved_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
