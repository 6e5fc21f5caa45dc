// Package memory holds the in-memory stores backing the matching engine.
// Stores are plain data structures; the owning service serializes access.
package memory

import (
	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/domain/model"
)

type UserStore struct {
	users []model.User
	byID  map[int64]int
}

func NewUserStore() *UserStore {
	return &UserStore{byID: map[int64]int{}}
}

// Replace swaps the entire user set, keeping the order of the incoming list.
// Existing swipes, matches and sessions are untouched.
func (s *UserStore) Replace(users []model.User) int {
	s.users = make([]model.User, 0, len(users))
	s.byID = make(map[int64]int, len(users))
	for _, u := range users {
		if _, exists := s.byID[u.ID]; exists {
			continue
		}
		s.byID[u.ID] = len(s.users)
		s.users = append(s.users, u)
	}
	return len(s.users)
}

func (s *UserStore) List() []model.User {
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *UserStore) Get(id int64) (model.User, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return model.User{}, false
	}
	return s.users[idx], true
}

func (s *UserStore) Len() int {
	return len(s.users)
}
