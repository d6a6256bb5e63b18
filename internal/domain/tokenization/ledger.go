package tokenization

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// MintResult is the outcome of a simulated NFT mint.
type MintResult struct {
	NFTID           string
	TransactionHash string
	BlockNumber     int
	GasUsed         int
}

// FractionalResult is the outcome of a simulated fractional-share issuance.
type FractionalResult struct {
	TokenID         string
	TotalShares     int
	PricePerShare   float64
	AvailableShares int
	ContractAddress string
}

// StakeResult is the outcome of a simulated staking position. Rewards are
// amount x APY x duration/365 with a fixed 8.5% APY.
type StakeResult struct {
	StakeID      string
	APY          float64
	MaturityDate time.Time
	Rewards      float64
}

// Ledger is the identifier-generation strategy behind the tokenization
// simulator. The mock implementation below stands in for a real chain
// client; tests inject a fixed seed for deterministic output.
type Ledger interface {
	MintNFT(artifactID string) MintResult
	CreateFractionalOwnership(nftID string, totalShares int, pricePerShare float64) FractionalResult
	StakeTokens(tokenID string, amount float64, durationDays int) StakeResult
}

const stakingAPY = 8.5

// MockLedger simulates XRPL tokenization with randomly generated
// identifiers. Nothing is submitted anywhere.
type MockLedger struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewMockLedger(seed int64) *MockLedger {
	return &MockLedger{
		rnd: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

func (l *MockLedger) MintNFT(artifactID string) MintResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	return MintResult{
		NFTID:           fmt.Sprintf("NFT_%d_%s", l.now().UnixMilli(), l.randAlnum(9)),
		TransactionHash: "0x" + l.randHex(64),
		BlockNumber:     l.rnd.Intn(1_000_000) + 1_000_000,
		GasUsed:         l.rnd.Intn(100_000) + 50_000,
	}
}

func (l *MockLedger) CreateFractionalOwnership(nftID string, totalShares int, pricePerShare float64) FractionalResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	return FractionalResult{
		TokenID:         "FRAC_" + nftID,
		TotalShares:     totalShares,
		PricePerShare:   pricePerShare,
		AvailableShares: totalShares,
		ContractAddress: "0x" + l.randHex(40),
	}
}

func (l *MockLedger) StakeTokens(tokenID string, amount float64, durationDays int) StakeResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	return StakeResult{
		StakeID:      fmt.Sprintf("STAKE_%d", now.UnixMilli()),
		APY:          stakingAPY,
		MaturityDate: now.Add(time.Duration(durationDays) * 24 * time.Hour),
		Rewards:      amount * stakingAPY / 100 * float64(durationDays) / 365,
	}
}

const (
	hexDigits   = "0123456789abcdef"
	alnumDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
)

func (l *MockLedger) randHex(n int) string {
	return l.randString(hexDigits, n)
}

func (l *MockLedger) randAlnum(n int) string {
	return l.randString(alnumDigits, n)
}

func (l *MockLedger) randString(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[l.rnd.Intn(len(alphabet))]
	}
	return string(b)
}
