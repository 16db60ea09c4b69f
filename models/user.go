package models

import "time"

// UserPreferences are per-user settings echoed by the profile endpoints.
type UserPreferences struct {
	Notifications bool   `json:"notifications"`
	DataSharing   bool   `json:"dataSharing"`
	Language      string `json:"language"`
}

// UserUsage summarizes a user's activity.
type UserUsage struct {
	QueriesUsed        int      `json:"queriesUsed"`
	TemplatesGenerated int      `json:"templatesGenerated"`
	TotalSpent         float64  `json:"totalSpent"`
	FavoriteCategories []string `json:"favoriteCategories,omitempty"`
}

// UserProfile is the mock profile served by the user endpoints.
type UserProfile struct {
	FarcasterID   string          `json:"farcasterId"`
	WalletAddress string          `json:"walletAddress,omitempty"`
	Jurisdiction  string          `json:"jurisdiction"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt,omitempty"`
	LastActive    time.Time       `json:"lastActive,omitempty"`
	Preferences   UserPreferences `json:"preferences"`
	Usage         UserUsage       `json:"usage"`
}
