package auctions

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an auction id is unknown.
var ErrNotFound = errors.New("auction not found")

// ErrNotActive is returned when an operation requires an active auction,
// either by status or because the current time is outside the bidding window.
var ErrNotActive = errors.New("auction is not active")

// ErrMissingFields is returned when a required creation field is absent.
var ErrMissingFields = errors.New("missing required fields")

// BidTooLowError rejects bids below the current price plus the minimum
// increment.
type BidTooLowError struct {
	Minimum float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("minimum bid is %g", e.Minimum)
}

const defaultMinimumIncrement = 100

// Store keeps auctions plus a parallel per-auction bid list in process
// memory. Every bid list is append-only.
type Store struct {
	mu       sync.RWMutex
	auctions map[string]*Auction
	bids     map[string][]*Bid

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		auctions: make(map[string]*Auction),
		bids:     make(map[string][]*Bid),
		now:      time.Now,
	}
}

// Put inserts a fully formed auction with an empty bid list, used for
// startup seed data.
func (s *Store) Put(a Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auctions[a.ID] = &a
	s.bids[a.ID] = []*Bid{}
}

// Create opens a new auction. The status is always forced to active and the
// current price starts at the start price.
func (s *Store) Create(in CreateInput) (Auction, error) {
	if in.ArtifactID == "" || in.Title == "" || in.StartPrice == 0 || in.ReservePrice == 0 || in.EndTime.IsZero() {
		return Auction{}, ErrMissingFields
	}

	now := s.now()
	start := now
	if in.StartTime != nil {
		start = *in.StartTime
	}
	increment := in.MinimumBidIncrement
	if increment == 0 {
		increment = defaultMinimumIncrement
	}

	a := &Auction{
		ID:                  "auction_" + uuid.NewString()[:8],
		ArtifactID:          in.ArtifactID,
		Title:               in.Title,
		Description:         in.Description,
		StartPrice:          in.StartPrice,
		CurrentPrice:        in.StartPrice,
		ReservePrice:        in.ReservePrice,
		StartTime:           start,
		EndTime:             in.EndTime,
		Status:              StatusActive,
		BidCount:            0,
		MinimumBidIncrement: increment,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.auctions[a.ID] = a
	s.bids[a.ID] = []*Bid{}
	return *a, nil
}

// List returns auctions matching the filter, oldest first.
func (s *Store) List(f Filter) []Auction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	out := make([]Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		if f.Status != "" && string(a.Status) != f.Status {
			continue
		}
		if f.Active {
			if a.Status != StatusActive || a.StartTime.After(now) || !a.EndTime.After(now) {
				continue
			}
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Get returns an auction together with its bid list.
func (s *Store) Get(id string) (Auction, []Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[id]
	if !ok {
		return Auction{}, nil, ErrNotFound
	}
	return *a, copyBids(s.bids[id]), nil
}

// PlaceBid validates and records a bid, then updates the auction's current
// price, highest bidder, bid count and update timestamp in one critical
// section.
func (s *Store) PlaceBid(auctionID string, amount float64, wallet, name string) (Bid, Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return Bid{}, Auction{}, ErrNotFound
	}

	now := s.now()
	if a.Status != StatusActive || a.StartTime.After(now) || !a.EndTime.After(now) {
		return Bid{}, Auction{}, ErrNotActive
	}

	minimum := a.CurrentPrice + a.MinimumBidIncrement
	if amount < minimum {
		return Bid{}, Auction{}, &BidTooLowError{Minimum: minimum}
	}

	if name == "" {
		name = "Anonymous"
	}
	b := &Bid{
		ID:           "bid_" + uuid.NewString()[:8],
		AuctionID:    auctionID,
		BidAmount:    amount,
		BidderWallet: wallet,
		BidderName:   name,
		BidTime:      now,
		Status:       "active",
	}
	s.bids[auctionID] = append(s.bids[auctionID], b)

	a.CurrentPrice = amount
	a.HighestBidder = wallet
	a.BidCount++
	a.UpdatedAt = now

	return *b, *a, nil
}

// Bids returns all bids for an auction sorted by descending amount. Equal
// amounts keep submission order. An unknown auction yields an empty list.
func (s *Store) Bids(auctionID string) []Bid {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := copyBids(s.bids[auctionID])
	sort.SliceStable(out, func(i, j int) bool { return out[i].BidAmount > out[j].BidAmount })
	return out
}

// End closes an active auction and resolves the winner as the bid with the
// maximum amount; the first-submitted bid wins ties. The reserve price is
// recorded but not enforced, so an auction can end with a winning bid below
// reserve.
func (s *Store) End(id string) (EndResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[id]
	if !ok {
		return EndResult{}, ErrNotFound
	}
	if a.Status != StatusActive {
		return EndResult{}, ErrNotActive
	}

	a.Status = StatusEnded
	a.UpdatedAt = s.now()

	var winner *Bid
	for _, b := range s.bids[id] {
		if winner == nil || b.BidAmount > winner.BidAmount {
			winner = b
		}
	}

	res := EndResult{Auction: *a, TotalBids: len(s.bids[id])}
	if winner != nil {
		w := *winner
		res.Winner = &w
	}
	return res, nil
}

// Cancel withdraws an active auction. Cancelled auctions refuse bids and
// cannot be ended.
func (s *Store) Cancel(id string) (Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[id]
	if !ok {
		return Auction{}, ErrNotFound
	}
	if a.Status != StatusActive {
		return Auction{}, ErrNotActive
	}

	a.Status = StatusCancelled
	a.UpdatedAt = s.now()
	return *a, nil
}

// UserActivity scans every bid list for the wallet and returns the matching
// bids annotated with their auction, plus the gross sum of bid amounts. The
// sum includes bids on auctions the wallet did not win.
func (s *Store) UserActivity(wallet string) ([]UserBid, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []UserBid{}
	var total float64
	for auctionID, list := range s.bids {
		for _, b := range list {
			if b.BidderWallet != wallet {
				continue
			}
			out = append(out, UserBid{Bid: *b, Auction: *s.auctions[auctionID]})
			total += b.BidAmount
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].BidTime.Before(out[j].BidTime) })
	return out, total
}

func copyBids(list []*Bid) []Bid {
	out := make([]Bid, 0, len(list))
	for _, b := range list {
		out = append(out, *b)
	}
	return out
}
