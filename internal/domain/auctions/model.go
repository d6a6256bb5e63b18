package auctions

import "time"

// Status is the auction lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

// Auction references an artifact by id only; no referential check is made
// against the artifact registry.
type Auction struct {
	ID                  string    `json:"id"`
	ArtifactID          string    `json:"artifactId"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	StartPrice          float64   `json:"startPrice"`
	CurrentPrice        float64   `json:"currentPrice"`
	ReservePrice        float64   `json:"reservePrice"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	Status              Status    `json:"status"`
	HighestBidder       string    `json:"highestBidder,omitempty"`
	BidCount            int       `json:"bidCount"`
	MinimumBidIncrement float64   `json:"minimumBidIncrement"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Bid is an append-only record; bids are never mutated or cancelled.
type Bid struct {
	ID           string    `json:"id"`
	AuctionID    string    `json:"auctionId"`
	BidAmount    float64   `json:"bidAmount"`
	BidderWallet string    `json:"bidderWallet"`
	BidderName   string    `json:"bidderName"`
	BidTime      time.Time `json:"bidTime"`
	Status       string    `json:"status"`
}

// CreateInput carries the fields accepted on auction creation.
type CreateInput struct {
	ArtifactID          string
	Title               string
	Description         string
	StartPrice          float64
	ReservePrice        float64
	StartTime           *time.Time
	EndTime             time.Time
	MinimumBidIncrement float64
}

// Filter selects auctions on list. Active additionally requires the current
// time to fall inside the bidding window.
type Filter struct {
	Status string
	Active bool
}

// EndResult reports the outcome of ending an auction. Winner is nil when no
// bids were recorded.
type EndResult struct {
	Auction   Auction `json:"auction"`
	Winner    *Bid    `json:"winner"`
	TotalBids int     `json:"totalBids"`
}

// UserBid annotates a bid with its parent auction for activity lookups.
type UserBid struct {
	Bid
	Auction Auction `json:"auction"`
}
