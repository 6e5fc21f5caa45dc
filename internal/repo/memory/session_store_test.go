package memory

import (
	"testing"

	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/domain/model"
)

func TestSessionStoreSingleSlot(t *testing.T) {
	store := NewSessionStore()

	if _, ok := store.Get("anything"); ok {
		t.Fatalf("empty store should match no token")
	}

	store.Put(model.Session{ID: "session_a", User: model.User{ID: 1}})
	if _, ok := store.Get("session_a"); !ok {
		t.Fatalf("stored session should be retrievable")
	}
	if _, ok := store.Get("session_b"); ok {
		t.Fatalf("mismatched token should miss")
	}
	if _, ok := store.Get(""); ok {
		t.Fatalf("blank token should miss")
	}

	// Put replaces; the old token dies immediately.
	store.Put(model.Session{ID: "session_b", User: model.User{ID: 2}})
	if _, ok := store.Get("session_a"); ok {
		t.Fatalf("replaced session should be invalid")
	}
	session, ok := store.Get("session_b")
	if !ok || session.User.ID != 2 {
		t.Fatalf("unexpected current session: %+v ok=%v", session, ok)
	}

	store.Clear()
	store.Clear()
	if _, ok := store.Get("session_b"); ok {
		t.Fatalf("cleared store should match no token")
	}
}
