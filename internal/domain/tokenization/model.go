package tokenization

import "time"

// Record status values.
const (
	StatusMinted         = "minted"
	StatusFractionalized = "fractionalized"
)

// Record maps an artifact to its generated NFT identifier and, once
// fractionalized, to its share descriptor.
type Record struct {
	ArtifactID      string      `json:"artifactId"`
	NFTID           string      `json:"nftId"`
	TransactionHash string      `json:"transactionHash"`
	BlockNumber     int         `json:"blockNumber"`
	GasUsed         int         `json:"gasUsed"`
	WalletAddress   string      `json:"walletAddress"`
	MintedAt        time.Time   `json:"mintedAt"`
	Status          string      `json:"status"`
	Fractional      *Fractional `json:"fractionalOwnership,omitempty"`
}

// Fractional is the single source of truth for a tokenized artifact's share
// counts; purchases decrement AvailableShares here.
type Fractional struct {
	TokenID         string  `json:"tokenId"`
	TotalShares     int     `json:"totalShares"`
	PricePerShare   float64 `json:"pricePerShare"`
	AvailableShares int     `json:"availableShares"`
	ContractAddress string  `json:"contractAddress"`
}

// Holding records a wallet's purchased shares in one artifact's pool.
type Holding struct {
	ArtifactID   string    `json:"artifactId"`
	Shares       int       `json:"shares"`
	PurchaseID   string    `json:"purchaseId"`
	PurchaseDate time.Time `json:"purchaseDate"`
	TotalCost    float64   `json:"totalCost"`
}

// PurchaseResult reports a completed share purchase.
type PurchaseResult struct {
	PurchaseID      string  `json:"purchaseId"`
	Shares          int     `json:"shares"`
	TotalCost       float64 `json:"totalCost"`
	RemainingShares int     `json:"remainingShares"`
}
