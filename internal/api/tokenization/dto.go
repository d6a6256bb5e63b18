package tokenization

// ---------- requests

type MintRequest struct {
	ArtifactID    string `json:"artifactId"`
	WalletAddress string `json:"walletAddress"`
}

type FractionalizeRequest struct {
	ArtifactID    string  `json:"artifactId"`
	TotalShares   int     `json:"totalShares"`
	PricePerShare float64 `json:"pricePerShare"`
}

type PurchaseSharesRequest struct {
	ArtifactID    string `json:"artifactId"`
	Shares        int    `json:"shares"`
	WalletAddress string `json:"walletAddress"`
}

type StakeRequest struct {
	TokenID       string  `json:"tokenId"`
	Amount        float64 `json:"amount"`
	Duration      int     `json:"duration"`
	WalletAddress string  `json:"walletAddress"`
}
