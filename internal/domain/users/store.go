package users

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a wallet address is unknown.
var ErrNotFound = errors.New("user not found")

// Store keeps user profiles in process memory, indexed by id and by wallet
// address. There is no deletion path.
type Store struct {
	mu      sync.RWMutex
	users   map[string]*User
	wallets map[string]string

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]*User),
		wallets: make(map[string]string),
		now:     time.Now,
	}
}

// Put inserts a fully formed profile, used for startup seed data.
func (s *Store) Put(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = &u
	s.wallets[u.WalletAddress] = u.ID
}

// GetByWallet returns the profile registered for a wallet address.
func (s *Store) GetByWallet(wallet string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.wallets[wallet]
	if !ok {
		return User{}, ErrNotFound
	}
	return *s.users[id], nil
}

// Upsert creates a profile for an unknown wallet or merges the provided
// fields into the existing one, refreshing the last-active timestamp. The
// second return reports whether a new profile was created.
func (s *Store) Upsert(in UpsertInput) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if id, ok := s.wallets[in.WalletAddress]; ok {
		u := s.users[id]
		mergeString(&u.Username, in.Username)
		mergeString(&u.Email, in.Email)
		mergeString(&u.FirstName, in.FirstName)
		mergeString(&u.LastName, in.LastName)
		mergeString(&u.Bio, in.Bio)
		u.LastActive = now
		return *u, false
	}

	username := in.Username
	if username == "" {
		username = fmt.Sprintf("user_%d", now.UnixMilli())
	}
	u := &User{
		ID:            "user_" + uuid.NewString()[:8],
		WalletAddress: in.WalletAddress,
		Username:      username,
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		ProfileImage:  fmt.Sprintf("https://ui-avatars.com/api/?name=%s+%s&background=random", in.FirstName, in.LastName),
		Bio:           in.Bio,
		Verified:      false,
		KYCStatus:     KYCPending,
		JoinedAt:      now,
		LastActive:    now,
	}
	s.users[u.ID] = u
	s.wallets[u.WalletAddress] = u.ID
	return *u, true
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Leaderboard ranks all users by the selected counter, descending, truncated
// to limit. Unknown field names fall back to total spent. The second return
// is the total number of registered users.
func (s *Store) Leaderboard(field string, limit int) ([]LeaderboardEntry, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return counter(all[i], field) > counter(all[j], field)
	})

	if limit <= 0 {
		limit = 10
	}
	if limit > len(all) {
		limit = len(all)
	}

	out := make([]LeaderboardEntry, 0, limit)
	for i, u := range all[:limit] {
		out = append(out, LeaderboardEntry{
			Rank:         i + 1,
			Username:     u.Username,
			ProfileImage: u.ProfileImage,
			Value:        counter(u, field),
			Verified:     u.Verified,
		})
	}
	return out, len(all)
}

func counter(u *User, field string) float64 {
	switch field {
	case "totalEarned":
		return u.TotalEarned
	case "stakingRewards":
		return u.StakingRewards
	case "restorationContributions":
		return u.RestorationContributions
	default:
		return u.TotalSpent
	}
}

// SubmitKYC stores the submitted payload verbatim and moves the user's KYC
// status to pending.
func (s *Store) SubmitKYC(wallet string, data map[string]any) (KYCResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.wallets[wallet]
	if !ok {
		return KYCResult{}, ErrNotFound
	}

	now := s.now()
	u := s.users[id]
	u.KYCStatus = KYCPending
	u.KYCData = data
	u.KYCSubmittedAt = &now

	return KYCResult{
		Status:                  KYCPending,
		SubmittedAt:             now,
		EstimatedProcessingTime: "24-48 hours",
	}, nil
}
