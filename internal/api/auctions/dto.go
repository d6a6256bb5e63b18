package auctions

import "time"

// ---------- requests

type CreateAuctionRequest struct {
	ArtifactID          string     `json:"artifactId"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	StartPrice          float64    `json:"startPrice"`
	ReservePrice        float64    `json:"reservePrice"`
	StartTime           *time.Time `json:"startTime"`
	EndTime             time.Time  `json:"endTime"`
	MinimumBidIncrement float64    `json:"minimumBidIncrement"`
}

type PlaceBidRequest struct {
	BidAmount    float64 `json:"bidAmount"`
	BidderWallet string  `json:"bidderWallet"`
	BidderName   string  `json:"bidderName"`
}
