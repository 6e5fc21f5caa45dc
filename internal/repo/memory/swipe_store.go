package memory

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/domain/model"
)

var ErrDuplicateSwipe = errors.New("duplicate swipe")

type pairKey struct {
	from int64
	to   int64
}

// SwipeStore is append-only except for DeleteByActor. Swipes are indexed by
// (from, to) pair for O(1) duplicate checks and by actor for candidate scans.
type SwipeStore struct {
	swipes  []model.Swipe
	byPair  map[pairKey]int
	byActor map[int64]map[int64]struct{}
	nextID  int64
}

func NewSwipeStore() *SwipeStore {
	return &SwipeStore{
		byPair:  map[pairKey]int{},
		byActor: map[int64]map[int64]struct{}{},
		nextID:  1,
	}
}

func (s *SwipeStore) Create(fromUserID, toUserID int64, isLike bool, now time.Time) (model.Swipe, error) {
	if fromUserID <= 0 || toUserID <= 0 || fromUserID == toUserID {
		return model.Swipe{}, fmt.Errorf("invalid swipe payload")
	}
	key := pairKey{from: fromUserID, to: toUserID}
	if _, exists := s.byPair[key]; exists {
		return model.Swipe{}, ErrDuplicateSwipe
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	swipe := model.Swipe{
		ID:         s.nextID,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		IsLike:     isLike,
		CreatedAt:  now.UTC(),
	}
	s.nextID++

	s.byPair[key] = len(s.swipes)
	s.swipes = append(s.swipes, swipe)

	targets := s.byActor[fromUserID]
	if targets == nil {
		targets = map[int64]struct{}{}
		s.byActor[fromUserID] = targets
	}
	targets[toUserID] = struct{}{}

	return swipe, nil
}

func (s *SwipeStore) Has(fromUserID, toUserID int64) bool {
	_, ok := s.byPair[pairKey{from: fromUserID, to: toUserID}]
	return ok
}

// IsLike reports whether a recorded swipe from -> to was a like. The second
// return value is false when no such swipe exists.
func (s *SwipeStore) IsLike(fromUserID, toUserID int64) (bool, bool) {
	idx, ok := s.byPair[pairKey{from: fromUserID, to: toUserID}]
	if !ok {
		return false, false
	}
	return s.swipes[idx].IsLike, true
}

// SwipedTargets returns the set of user ids the actor has swiped on.
func (s *SwipeStore) SwipedTargets(fromUserID int64) map[int64]struct{} {
	targets := s.byActor[fromUserID]
	out := make(map[int64]struct{}, len(targets))
	for id := range targets {
		out[id] = struct{}{}
	}
	return out
}

// DeleteByActor removes every swipe the actor made and returns the count.
// Swipes made by others toward the actor are kept.
func (s *SwipeStore) DeleteByActor(fromUserID int64) int {
	targets := s.byActor[fromUserID]
	if len(targets) == 0 {
		delete(s.byActor, fromUserID)
		return 0
	}

	kept := make([]model.Swipe, 0, len(s.swipes)-len(targets))
	for _, swipe := range s.swipes {
		if swipe.FromUserID == fromUserID {
			continue
		}
		kept = append(kept, swipe)
	}

	removed := len(s.swipes) - len(kept)
	s.swipes = kept
	delete(s.byActor, fromUserID)

	s.byPair = make(map[pairKey]int, len(kept))
	for i, swipe := range kept {
		s.byPair[pairKey{from: swipe.FromUserID, to: swipe.ToUserID}] = i
	}

	return removed
}

func (s *SwipeStore) Len() int {
	return len(s.swipes)
}
