package artifacts

// ---------- requests

type CreateArtifactRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Provenance     string   `json:"provenance"`
	Culture        string   `json:"culture"`
	Period         string   `json:"period"`
	Material       string   `json:"material"`
	Dimensions     string   `json:"dimensions"`
	Condition      string   `json:"condition"`
	EstimatedValue int      `json:"estimatedValue"`
	Images         []string `json:"images"`
}

// UpdateArtifactRequest is a shallow merge: absent fields preserve the
// stored values.
type UpdateArtifactRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Provenance     *string `json:"provenance"`
	Culture        *string `json:"culture"`
	Period         *string `json:"period"`
	Material       *string `json:"material"`
	Dimensions     *string `json:"dimensions"`
	Condition      *string `json:"condition"`
	EstimatedValue *int    `json:"estimatedValue"`
	CurrentValue   *int    `json:"currentValue"`

	Tokenized           *bool    `json:"tokenized"`
	FractionalOwnership *bool    `json:"fractionalOwnership"`
	TokenID             *string  `json:"tokenId"`
	TotalShares         *int     `json:"totalShares"`
	AvailableShares     *int     `json:"availableShares"`
	PricePerShare       *float64 `json:"pricePerShare"`

	Images   []string `json:"images"`
	IPFSHash *string  `json:"ipfsHash"`
}
