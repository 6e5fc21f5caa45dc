package memory

import (
	"testing"

	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/domain/model"
)

func TestUserStoreReplaceKeepsOrder(t *testing.T) {
	store := NewUserStore()

	count := store.Replace([]model.User{
		{ID: 3, FirstName: "Carol"},
		{ID: 1, FirstName: "Alice"},
		{ID: 2, FirstName: "Bob"},
	})
	if count != 3 {
		t.Fatalf("unexpected count: %d", count)
	}

	users := store.List()
	for i, want := range []int64{3, 1, 2} {
		if users[i].ID != want {
			t.Fatalf("unexpected order at %d: got %d want %d", i, users[i].ID, want)
		}
	}

	// Replace swaps the whole set.
	count = store.Replace([]model.User{{ID: 9, FirstName: "Zoe"}})
	if count != 1 || store.Len() != 1 {
		t.Fatalf("replace should swap the set: count=%d len=%d", count, store.Len())
	}
	if _, ok := store.Get(1); ok {
		t.Fatalf("old users should be gone after replace")
	}
}

func TestUserStoreSkipsDuplicateIDs(t *testing.T) {
	store := NewUserStore()

	count := store.Replace([]model.User{
		{ID: 1, FirstName: "Alice"},
		{ID: 1, FirstName: "Impostor"},
	})
	if count != 1 {
		t.Fatalf("unexpected count: %d", count)
	}
	user, ok := store.Get(1)
	if !ok || user.FirstName != "Alice" {
		t.Fatalf("first occurrence should win: %+v", user)
	}
}

func TestUserStoreGet(t *testing.T) {
	store := NewUserStore()
	store.Replace([]model.User{{ID: 1, FirstName: "Alice", Description: "Loves hiking."}})

	user, ok := store.Get(1)
	if !ok || user.Description != "Loves hiking." {
		t.Fatalf("expected full record, got %+v ok=%v", user, ok)
	}
	if _, ok := store.Get(2); ok {
		t.Fatalf("unexpected hit for unknown id")
	}
}
