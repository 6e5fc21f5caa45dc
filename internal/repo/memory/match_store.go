package memory

import (
	"fmt"
	"time"

	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/domain/model"
)

type MatchStore struct {
	matches []model.Match
	nextID  int64
}

func NewMatchStore() *MatchStore {
	return &MatchStore{nextID: 1}
}

// Create stores one canonical record per pair, with the smaller user id first.
// Both participants project their view from the same record, so the two sides
// can never disagree on matched_at.
func (s *MatchStore) Create(userID, targetID int64, now time.Time) (model.Match, error) {
	if userID <= 0 || targetID <= 0 || userID == targetID {
		return model.Match{}, fmt.Errorf("invalid match payload")
	}
	if s.Exists(userID, targetID) {
		return model.Match{}, fmt.Errorf("match already exists")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	userA, userB := userID, targetID
	if userA > userB {
		userA, userB = userB, userA
	}

	match := model.Match{
		ID:        s.nextID,
		UserAID:   userA,
		UserBID:   userB,
		CreatedAt: now.UTC(),
	}
	s.nextID++
	s.matches = append(s.matches, match)
	return match, nil
}

func (s *MatchStore) Exists(userID, targetID int64) bool {
	for _, m := range s.matches {
		if m.Involves(userID) && m.Involves(targetID) {
			return true
		}
	}
	return false
}

// ListForUser returns the matches involving userID in creation order.
func (s *MatchStore) ListForUser(userID int64) []model.Match {
	var out []model.Match
	for _, m := range s.matches {
		if m.Involves(userID) {
			out = append(out, m)
		}
	}
	return out
}

// DeleteByUser removes every match involving userID and returns the count.
func (s *MatchStore) DeleteByUser(userID int64) int {
	kept := s.matches[:0]
	removed := 0
	for _, m := range s.matches {
		if m.Involves(userID) {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	s.matches = kept
	return removed
}

func (s *MatchStore) Len() int {
	return len(s.matches)
}
