package models

import "time"

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
	PaymentFailed    = "failed"
)

// PaymentRequest is the payload for initiating a mock payment.
type PaymentRequest struct {
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	UserID      string            `json:"userId"`
	ServiceType string            `json:"serviceType"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// PaymentResponse mirrors what an on-chain settlement would return. The
// transaction hash is cosmetic: 0x followed by 64 hex digits, no settlement
// behind it.
type PaymentResponse struct {
	PaymentID       string    `json:"paymentId"`
	TransactionHash string    `json:"transactionHash"`
	Status          string    `json:"status"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	ServiceType     string    `json:"serviceType,omitempty"`
	PaymentURL      string    `json:"paymentUrl,omitempty"`
	ExpiresAt       time.Time `json:"expiresAt,omitempty"`
}

// PaymentStatus is the lookup result for an initiated payment.
type PaymentStatus struct {
	PaymentID       string    `json:"paymentId"`
	TransactionHash string    `json:"transactionHash"`
	Status          string    `json:"status"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	Confirmations   int       `json:"confirmations"`
	BlockNumber     int64     `json:"blockNumber,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}
