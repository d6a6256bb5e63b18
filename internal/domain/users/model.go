package users

import "time"

// KYC status values.
const (
	KYCPending  = "pending"
	KYCVerified = "verified"
)

// User is a marketplace profile keyed by wallet address. The aggregate
// counters are only ever set directly; no marketplace operation increments
// them.
type User struct {
	ID            string `json:"id"`
	WalletAddress string `json:"walletAddress"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	ProfileImage  string `json:"profileImage"`
	Bio           string `json:"bio"`

	Verified  bool   `json:"verified"`
	KYCStatus string `json:"kycStatus"`

	TotalSpent               float64 `json:"totalSpent"`
	TotalEarned              float64 `json:"totalEarned"`
	StakingRewards           float64 `json:"stakingRewards"`
	RestorationContributions float64 `json:"restorationContributions"`

	KYCData        map[string]any `json:"kycData,omitempty"`
	KYCSubmittedAt *time.Time     `json:"kycSubmittedAt,omitempty"`

	JoinedAt   time.Time `json:"joinedAt"`
	LastActive time.Time `json:"lastActive"`
}

// UpsertInput carries the profile fields settable through the API. Empty
// strings leave the stored value untouched on update.
type UpsertInput struct {
	WalletAddress string
	Username      string
	Email         string
	FirstName     string
	LastName      string
	Bio           string
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	Username     string  `json:"username"`
	ProfileImage string  `json:"profileImage"`
	Value        float64 `json:"value"`
	Verified     bool    `json:"verified"`
}

// KYCResult acknowledges a KYC submission.
type KYCResult struct {
	Status                  string    `json:"status"`
	SubmittedAt             time.Time `json:"submittedAt"`
	EstimatedProcessingTime string    `json:"estimatedProcessingTime"`
}
