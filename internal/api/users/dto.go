package users

// ---------- requests

type UpsertProfileRequest struct {
	WalletAddress string `json:"walletAddress"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Bio           string `json:"bio"`
}

type SubmitKYCRequest struct {
	WalletAddress string         `json:"walletAddress"`
	KYCData       map[string]any `json:"kycData"`
}
