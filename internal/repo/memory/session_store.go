package memory

import (
	"strings"

	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/domain/model"
)

// SessionStore holds at most one session for the whole process. Put replaces
// any prior session, invalidating its token immediately. A token-keyed map is
// the drop-in replacement if multiple concurrent sessions are ever needed.
type SessionStore struct {
	current *model.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Put(session model.Session) {
	s.current = &session
}

func (s *SessionStore) Get(sessionID string) (model.Session, bool) {
	if s.current == nil || strings.TrimSpace(sessionID) == "" {
		return model.Session{}, false
	}
	if s.current.ID != sessionID {
		return model.Session{}, false
	}
	return *s.current, true
}

func (s *SessionStore) Clear() {
	s.current = nil
}
