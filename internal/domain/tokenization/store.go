package tokenization

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotTokenized is returned when an artifact has no tokenization record.
var ErrNotTokenized = errors.New("artifact not tokenized")

// ErrNoFractional is returned when an artifact has no fractional descriptor.
var ErrNoFractional = errors.New("fractional ownership not available")

// ErrInsufficientShares is returned when a purchase exceeds the available
// share count. The descriptor is left untouched.
var ErrInsufficientShares = errors.New("insufficient shares available")

// Store keeps tokenization records keyed by artifact id plus per-wallet
// holding lists. All ledger interaction goes through the injected Ledger.
type Store struct {
	mu      sync.RWMutex
	records map[string]*Record
	holders map[string][]Holding

	ledger Ledger
	now    func() time.Time
}

func NewStore(ledger Ledger) *Store {
	return &Store{
		records: make(map[string]*Record),
		holders: make(map[string][]Holding),
		ledger:  ledger,
		now:     time.Now,
	}
}

// Mint simulates an NFT mint and stores the resulting record. Minting the
// same artifact again overwrites the previous record.
func (s *Store) Mint(artifactID, walletAddress string) Record {
	res := s.ledger.MintNFT(artifactID)

	s.mu.Lock()
	defer s.mu.Unlock()

	r := &Record{
		ArtifactID:      artifactID,
		NFTID:           res.NFTID,
		TransactionHash: res.TransactionHash,
		BlockNumber:     res.BlockNumber,
		GasUsed:         res.GasUsed,
		WalletAddress:   walletAddress,
		MintedAt:        s.now(),
		Status:          StatusMinted,
	}
	s.records[artifactID] = r
	return snapshot(r)
}

// Fractionalize attaches a share descriptor to an existing tokenization
// record and moves it to the fractionalized status.
func (s *Store) Fractionalize(artifactID string, totalShares int, pricePerShare float64) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[artifactID]
	if !ok {
		return Record{}, ErrNotTokenized
	}

	res := s.ledger.CreateFractionalOwnership(r.NFTID, totalShares, pricePerShare)
	r.Fractional = &Fractional{
		TokenID:         res.TokenID,
		TotalShares:     res.TotalShares,
		PricePerShare:   res.PricePerShare,
		AvailableShares: res.AvailableShares,
		ContractAddress: res.ContractAddress,
	}
	r.Status = StatusFractionalized
	return snapshot(r), nil
}

// PurchaseShares decrements the shared descriptor's available count and
// appends a holding to the buyer's list. On any failure nothing is mutated.
func (s *Store) PurchaseShares(artifactID string, shares int, walletAddress string) (PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[artifactID]
	if !ok || r.Fractional == nil {
		return PurchaseResult{}, ErrNoFractional
	}
	if shares > r.Fractional.AvailableShares {
		return PurchaseResult{}, ErrInsufficientShares
	}

	r.Fractional.AvailableShares -= shares
	totalCost := float64(shares) * r.Fractional.PricePerShare

	h := Holding{
		ArtifactID:   artifactID,
		Shares:       shares,
		PurchaseID:   "PURCHASE_" + uuid.NewString()[:8],
		PurchaseDate: s.now(),
		TotalCost:    totalCost,
	}
	s.holders[walletAddress] = append(s.holders[walletAddress], h)

	return PurchaseResult{
		PurchaseID:      h.PurchaseID,
		Shares:          shares,
		TotalCost:       totalCost,
		RemainingShares: r.Fractional.AvailableShares,
	}, nil
}

// Stake opens a simulated staking position. Nothing links back to any real
// staked balance.
func (s *Store) Stake(tokenID string, amount float64, durationDays int) StakeResult {
	return s.ledger.StakeTokens(tokenID, amount, durationDays)
}

// Holdings returns a wallet's holdings together with the summed total cost.
func (s *Store) Holdings(walletAddress string) ([]Holding, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.holders[walletAddress]
	out := make([]Holding, len(list))
	copy(out, list)

	var total float64
	for _, h := range out {
		total += h.TotalCost
	}
	return out, total
}

// Status returns the tokenization record for an artifact.
func (s *Store) Status(artifactID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[artifactID]
	if !ok {
		return Record{}, ErrNotTokenized
	}
	return snapshot(r), nil
}

// snapshot copies a record so callers never alias the live share counter.
func snapshot(r *Record) Record {
	out := *r
	if r.Fractional != nil {
		f := *r.Fractional
		out.Fractional = &f
	}
	return out
}
