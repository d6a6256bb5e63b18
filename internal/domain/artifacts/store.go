package artifacts

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an artifact id is unknown.
var ErrNotFound = errors.New("artifact not found")

// ErrMissingFields is returned when a required creation field is absent.
var ErrMissingFields = errors.New("missing required fields")

// Store keeps the artifact registry in process memory. It exclusively owns
// the collection; the registry holds records in insertion order.
type Store struct {
	mu    sync.RWMutex
	items []*Artifact
}

func NewStore() *Store {
	return &Store{}
}

// Put inserts a fully formed record, used for startup seed data.
func (s *Store) Put(a Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, &a)
}

// List returns artifacts matching every set filter.
func (s *Store) List(f Filter) []Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Artifact, 0, len(s.items))
	for _, a := range s.items {
		if !matches(a, f) {
			continue
		}
		out = append(out, *a)
	}
	return out
}

func matches(a *Artifact, f Filter) bool {
	if f.Culture != "" && !containsFold(a.Culture, f.Culture) {
		return false
	}
	if f.Period != "" && !containsFold(a.Period, f.Period) {
		return false
	}
	if f.Tokenized != nil && a.Tokenized != *f.Tokenized {
		return false
	}
	if f.MinValue != nil && a.CurrentValue < *f.MinValue {
		return false
	}
	if f.MaxValue != nil && a.CurrentValue > *f.MaxValue {
		return false
	}
	if f.Search != "" {
		if !containsFold(a.Title, f.Search) &&
			!containsFold(a.Description, f.Search) &&
			!containsFold(a.Culture, f.Search) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Get returns the artifact with the given id.
func (s *Store) Get(id string) (Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.items {
		if a.ID == id {
			return *a, nil
		}
	}
	return Artifact{}, ErrNotFound
}

// Create registers a new artifact. Title, description, culture and a
// non-zero estimated value are required; current value starts equal to the
// estimated value.
func (s *Store) Create(in CreateInput) (Artifact, error) {
	if in.Title == "" || in.Description == "" || in.Culture == "" || in.EstimatedValue == 0 {
		return Artifact{}, ErrMissingFields
	}

	now := time.Now()
	a := &Artifact{
		ID:             "art_" + uuid.NewString()[:8],
		Title:          in.Title,
		Description:    in.Description,
		Provenance:     orUnknown(in.Provenance),
		Culture:        in.Culture,
		Period:         orUnknown(in.Period),
		Material:       orUnknown(in.Material),
		Dimensions:     orUnknown(in.Dimensions),
		Condition:      orUnknown(in.Condition),
		EstimatedValue: in.EstimatedValue,
		CurrentValue:   in.EstimatedValue,
		Images:         in.Images,
		IPFSHash:       fmt.Sprintf("QmMockHash%d", now.UnixMilli()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if a.Images == nil {
		a.Images = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, a)
	return *a, nil
}

func orUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}

// Update merges the provided fields over the stored record. The id and the
// update timestamp are always force-set.
func (s *Store) Update(id string, in UpdateInput) (Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.items {
		if a.ID != id {
			continue
		}
		applyString(&a.Title, in.Title)
		applyString(&a.Description, in.Description)
		applyString(&a.Provenance, in.Provenance)
		applyString(&a.Culture, in.Culture)
		applyString(&a.Period, in.Period)
		applyString(&a.Material, in.Material)
		applyString(&a.Dimensions, in.Dimensions)
		applyString(&a.Condition, in.Condition)
		if in.EstimatedValue != nil {
			a.EstimatedValue = *in.EstimatedValue
		}
		if in.CurrentValue != nil {
			a.CurrentValue = *in.CurrentValue
		}
		if in.Tokenized != nil {
			a.Tokenized = *in.Tokenized
		}
		if in.FractionalOwnership != nil {
			a.FractionalOwnership = *in.FractionalOwnership
		}
		applyString(&a.TokenID, in.TokenID)
		if in.TotalShares != nil {
			a.TotalShares = *in.TotalShares
		}
		if in.AvailableShares != nil {
			a.AvailableShares = *in.AvailableShares
		}
		if in.PricePerShare != nil {
			a.PricePerShare = *in.PricePerShare
		}
		if in.Images != nil {
			a.Images = in.Images
		}
		applyString(&a.IPFSHash, in.IPFSHash)

		a.ID = id
		a.UpdatedAt = time.Now()
		return *a, nil
	}
	return Artifact{}, ErrNotFound
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Delete removes the artifact. It is not idempotent: deleting an already
// removed id reports ErrNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.items {
		if a.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
