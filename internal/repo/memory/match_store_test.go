package memory

import (
	"testing"
	"time"
)

func TestMatchStoreCanonicalPair(t *testing.T) {
	store := NewMatchStore()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	match, err := store.Create(7, 3, now)
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if match.UserAID != 3 || match.UserBID != 7 {
		t.Fatalf("expected canonical ordering, got %+v", match)
	}
	if !match.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", match.CreatedAt)
	}

	if !store.Exists(3, 7) || !store.Exists(7, 3) {
		t.Fatalf("pair existence should be order independent")
	}
	if _, err := store.Create(3, 7, now); err == nil {
		t.Fatalf("expected error for existing pair")
	}
}

func TestMatchStoreListForUserInCreationOrder(t *testing.T) {
	store := NewMatchStore()
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	if _, err := store.Create(1, 2, base); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Create(3, 1, base.Add(time.Minute)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Create(2, 3, base.Add(2*time.Minute)); err != nil {
		t.Fatalf("create: %v", err)
	}

	matches := store.ListForUser(1)
	if len(matches) != 2 {
		t.Fatalf("unexpected match count for user 1: %d", len(matches))
	}
	if matches[0].Other(1) != 2 || matches[1].Other(1) != 3 {
		t.Fatalf("unexpected order: %+v", matches)
	}

	if got := store.ListForUser(9); len(got) != 0 {
		t.Fatalf("expected no matches for unknown user, got %+v", got)
	}
}

func TestMatchStoreDeleteByUser(t *testing.T) {
	store := NewMatchStore()
	now := time.Now()

	if _, err := store.Create(1, 2, now); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Create(1, 3, now); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Create(2, 3, now); err != nil {
		t.Fatalf("create: %v", err)
	}

	removed := store.DeleteByUser(1)
	if removed != 2 {
		t.Fatalf("unexpected removed count: %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("unexpected remaining matches: %d", store.Len())
	}
	if len(store.ListForUser(1)) != 0 {
		t.Fatalf("user 1 should have no matches left")
	}
	if !store.Exists(2, 3) {
		t.Fatalf("unrelated match should survive")
	}
}
