package artifacts

import (
	"errors"
	"testing"
)

func TestCreateDefaults(t *testing.T) {
	s := NewStore()

	a, err := s.Create(CreateInput{
		Title:          "Vase",
		Description:    "d",
		Culture:        "Maya",
		EstimatedValue: 1000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.CurrentValue != 1000 {
		t.Errorf("currentValue = %d, want 1000", a.CurrentValue)
	}
	if a.Tokenized || a.FractionalOwnership {
		t.Errorf("new artifact must not be tokenized")
	}
	if a.Provenance != "Unknown" || a.Period != "Unknown" || a.Material != "Unknown" {
		t.Errorf("unset text fields should default to Unknown, got %q %q %q", a.Provenance, a.Period, a.Material)
	}
	if a.Images == nil || len(a.Images) != 0 {
		t.Errorf("images should default to an empty list, got %v", a.Images)
	}
	if a.ID == "" || a.IPFSHash == "" {
		t.Errorf("id and ipfs hash must be generated")
	}
}

func TestCreateMissingFields(t *testing.T) {
	s := NewStore()

	cases := []CreateInput{
		{Description: "d", Culture: "Maya", EstimatedValue: 10},
		{Title: "t", Culture: "Maya", EstimatedValue: 10},
		{Title: "t", Description: "d", EstimatedValue: 10},
		{Title: "t", Description: "d", Culture: "Maya"},
	}
	for i, in := range cases {
		if _, err := s.Create(in); !errors.Is(err, ErrMissingFields) {
			t.Errorf("case %d: err = %v, want ErrMissingFields", i, err)
		}
	}
}

func seedThree(t *testing.T, s *Store) (Artifact, Artifact, Artifact) {
	t.Helper()
	a1, _ := s.Create(CreateInput{Title: "Jade Mask", Description: "ceremonial mask", Culture: "Olmec", EstimatedValue: 5000})
	a2, _ := s.Create(CreateInput{Title: "Warrior Figurine", Description: "ceramic warrior", Culture: "Maya", Period: "Classic Period", EstimatedValue: 800})
	a3, _ := s.Create(CreateInput{Title: "Obsidian Mirror", Description: "polished mirror", Culture: "Aztec", EstimatedValue: 2000})
	return a1, a2, a3
}

func TestListFiltersAreANDed(t *testing.T) {
	s := NewStore()
	_, a2, _ := seedThree(t, s)

	got := s.List(Filter{Culture: "maya", Search: "WARRIOR"})
	if len(got) != 1 || got[0].ID != a2.ID {
		t.Fatalf("culture+search filter = %v, want only %s", got, a2.ID)
	}

	// same filters individually match, the conjunction with a period miss must not
	got = s.List(Filter{Culture: "maya", Period: "post-classic"})
	if len(got) != 0 {
		t.Fatalf("conflicting filters should intersect to empty, got %v", got)
	}
}

func TestListValueRange(t *testing.T) {
	s := NewStore()
	a1, _, a3 := seedThree(t, s)

	min, max := 1000, 10000
	got := s.List(Filter{MinValue: &min, MaxValue: &max})
	if len(got) != 2 {
		t.Fatalf("value range matched %d artifacts, want 2", len(got))
	}
	if got[0].ID != a1.ID || got[1].ID != a3.ID {
		t.Errorf("unexpected value range result: %v", got)
	}
}

func TestListTokenizedFilter(t *testing.T) {
	s := NewStore()
	a1, _, _ := seedThree(t, s)

	tok := true
	if _, err := s.Update(a1.ID, UpdateInput{Tokenized: &tok}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := s.List(Filter{Tokenized: &tok})
	if len(got) != 1 || got[0].ID != a1.ID {
		t.Fatalf("tokenized=true = %v, want only %s", got, a1.ID)
	}

	untok := false
	if got := s.List(Filter{Tokenized: &untok}); len(got) != 2 {
		t.Fatalf("tokenized=false matched %d, want 2", len(got))
	}
}

func TestUpdateMergesShallow(t *testing.T) {
	s := NewStore()
	a1, _, _ := seedThree(t, s)

	title := "Restored Jade Mask"
	current := 7500
	got, err := s.Update(a1.ID, UpdateInput{Title: &title, CurrentValue: &current})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != title || got.CurrentValue != 7500 {
		t.Errorf("updated fields not applied: %+v", got)
	}
	if got.Description != a1.Description || got.Culture != a1.Culture || got.EstimatedValue != a1.EstimatedValue {
		t.Errorf("absent fields must be preserved: %+v", got)
	}
	if !got.UpdatedAt.After(a1.UpdatedAt) && !got.UpdatedAt.Equal(a1.UpdatedAt) {
		t.Errorf("updatedAt must be refreshed")
	}
	if got.ID != a1.ID {
		t.Errorf("id must be force-set to %s, got %s", a1.ID, got.ID)
	}
}

func TestUpdateUnknown(t *testing.T) {
	s := NewStore()
	title := "x"
	if _, err := s.Update("art_missing", UpdateInput{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	s := NewStore()
	a1, _, _ := seedThree(t, s)

	if err := s.Delete(a1.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if _, err := s.Get(a1.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(a1.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}
