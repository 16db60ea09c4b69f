package models

import "time"

// SessionQuery records one paid query inside a session.
type SessionQuery struct {
	ID           string    `json:"id"`
	QueryString  string    `json:"queryString"`
	Jurisdiction string    `json:"jurisdiction"`
	ResponseType string    `json:"responseType"` // "summary", "template" or "guidance"
	Cost         float64   `json:"cost"`
	Timestamp    time.Time `json:"timestamp"`
}

// UserSession is the per-user state held by the session store.
type UserSession struct {
	ID            string         `json:"id"`
	FarcasterID   string         `json:"farcasterId,omitempty"`
	WalletAddress string         `json:"walletAddress,omitempty"`
	Jurisdiction  string         `json:"jurisdiction"`
	Queries       []SessionQuery `json:"queries"`
	TotalSpent    float64        `json:"totalSpent"`
	CreatedAt     time.Time      `json:"createdAt"`
	LastActive    time.Time      `json:"lastActive"`
}
