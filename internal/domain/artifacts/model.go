package artifacts

import "time"

// Artifact is a catalogued physical item available for listing, auction or
// tokenization. The fractional block is only populated once an artifact has
// been tokenized and split into shares.
type Artifact struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Provenance     string `json:"provenance"`
	Culture        string `json:"culture"`
	Period         string `json:"period"`
	Material       string `json:"material"`
	Dimensions     string `json:"dimensions"`
	Condition      string `json:"condition"`
	EstimatedValue int    `json:"estimatedValue"`
	CurrentValue   int    `json:"currentValue"`

	Tokenized           bool    `json:"tokenized"`
	FractionalOwnership bool    `json:"fractionalOwnership"`
	TokenID             string  `json:"tokenId,omitempty"`
	TotalShares         int     `json:"totalShares,omitempty"`
	AvailableShares     int     `json:"availableShares,omitempty"`
	PricePerShare       float64 `json:"pricePerShare,omitempty"`

	Images   []string `json:"images"`
	IPFSHash string   `json:"ipfsHash"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateInput carries the fields accepted on artifact creation.
type CreateInput struct {
	Title          string
	Description    string
	Provenance     string
	Culture        string
	Period         string
	Material       string
	Dimensions     string
	Condition      string
	EstimatedValue int
	Images         []string
}

// UpdateInput is a shallow merge: only non-nil fields overwrite the stored
// record, everything else is preserved.
type UpdateInput struct {
	Title          *string
	Description    *string
	Provenance     *string
	Culture        *string
	Period         *string
	Material       *string
	Dimensions     *string
	Condition      *string
	EstimatedValue *int
	CurrentValue   *int

	Tokenized           *bool
	FractionalOwnership *bool
	TokenID             *string
	TotalShares         *int
	AvailableShares     *int
	PricePerShare       *float64

	Images   []string
	IPFSHash *string
}

// Filter selects artifacts on list. Text matches are case-insensitive
// substring matches and all set filters are ANDed.
type Filter struct {
	Culture   string
	Period    string
	Search    string
	Tokenized *bool
	MinValue  *int
	MaxValue  *int
}
