package matching

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/domain/model"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidSession = errors.New("invalid session")
	ErrDuplicateSwipe = errors.New("duplicate swipe")
)

type UserStore interface {
	Replace(users []model.User) int
	List() []model.User
	Get(id int64) (model.User, bool)
}

type SwipeStore interface {
	Create(fromUserID, toUserID int64, isLike bool, now time.Time) (model.Swipe, error)
	Has(fromUserID, toUserID int64) bool
	IsLike(fromUserID, toUserID int64) (liked bool, exists bool)
	SwipedTargets(fromUserID int64) map[int64]struct{}
	DeleteByActor(fromUserID int64) int
}

type MatchStore interface {
	Create(userID, targetID int64, now time.Time) (model.Match, error)
	ListForUser(userID int64) []model.Match
	DeleteByUser(userID int64) int
}

type SessionStore interface {
	Put(session model.Session)
	Get(sessionID string) (model.Session, bool)
	Clear()
}

// MatchItem is one entry of a user's match list, projected from the canonical
// match record onto that user's perspective.
type MatchItem struct {
	UserID    int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	MatchedAt time.Time `json:"matched_at"`
}

// SwipeResult reports a recorded swipe. When the swipe closed a mutual like,
// MatchCreated is set and MatchedWith/MatchedAt describe the new match; the
// caller decides how to surface it.
type SwipeResult struct {
	MatchCreated bool
	MatchedWith  *model.User
	MatchedAt    time.Time
}

type Dependencies struct {
	UserStore    UserStore
	SwipeStore   SwipeStore
	MatchStore   MatchStore
	SessionStore SessionStore
	Logger       *zap.Logger
}

// Service is the matching engine. It owns all domain state and serializes
// every operation through a single mutex; there is one live session at a time,
// so finer locking buys nothing.
type Service struct {
	mu       sync.Mutex
	users    UserStore
	swipes   SwipeStore
	matches  MatchStore
	sessions SessionStore
	logger   *zap.Logger
	now      func() time.Time
	newToken func() string
}

func NewService(deps Dependencies) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:    deps.UserStore,
		swipes:   deps.SwipeStore,
		matches:  deps.MatchStore,
		sessions: deps.SessionStore,
		logger:   logger,
		now:      time.Now,
		newToken: newSessionID,
	}
}

// BulkLoadUsers replaces the whole user set and returns the count loaded.
// Swipes, matches and the current session are left untouched; callers are
// expected to load users before any session exists.
func (s *Service) BulkLoadUsers(ctx context.Context, users []model.User) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := s.users.Replace(users)
	s.logger.Info("users loaded", zap.Int("count", loaded))
	return loaded, nil
}

// ListUsers returns all users in load order with identity and name fields only.
func (s *Service) ListUsers(ctx context.Context) []model.User {
	if s.users == nil {
		return []model.User{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.users.List()
	out := make([]model.User, 0, len(all))
	for _, u := range all {
		out = append(out, u.Public())
	}
	return out
}

// StartSession binds userID to a fresh opaque token, replacing any prior
// session. The old token becomes invalid immediately.
func (s *Service) StartSession(ctx context.Context, userID int64) (model.Session, error) {
	if err := s.ready(); err != nil {
		return model.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.Get(userID)
	if !ok {
		return model.Session{}, ErrUserNotFound
	}

	session := model.Session{
		ID:        s.newToken(),
		User:      user,
		StartedAt: s.now().UTC(),
	}
	s.sessions.Put(session)

	s.logger.Info("session started",
		zap.Int64("user_id", user.ID),
		zap.String("session_id", session.ID),
	)
	return session, nil
}

// EndSession clears the current session. Calling it with no active session is
// a no-op.
func (s *Service) EndSession(ctx context.Context) {
	if s.sessions == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Clear()
	s.logger.Debug("session ended")
}

// NextCandidate returns the first user, in load order, that the session's user
// has not swiped on and is not the user themselves. A nil user means every
// other profile has been swiped on.
func (s *Service) NextCandidate(ctx context.Context, sessionID string) (*model.User, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrInvalidSession
	}

	currentID := session.User.ID
	swiped := s.swipes.SwipedTargets(currentID)
	for _, u := range s.users.List() {
		if u.ID == currentID {
			continue
		}
		if _, seen := swiped[u.ID]; seen {
			continue
		}
		candidate := u
		return &candidate, nil
	}
	return nil, nil
}

// Swipe records a like or dislike from the session's user toward targetID.
// A repeat swipe on the same target is rejected without touching state. When a
// like closes a mutual pair, one canonical match is created and reported on
// the result.
func (s *Service) Swipe(ctx context.Context, sessionID string, targetID int64, isLike bool) (SwipeResult, error) {
	if err := s.ready(); err != nil {
		return SwipeResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return SwipeResult{}, ErrInvalidSession
	}

	fromUserID := session.User.ID
	if targetID <= 0 || targetID == fromUserID {
		return SwipeResult{}, ErrValidation
	}
	if s.swipes.Has(fromUserID, targetID) {
		return SwipeResult{}, ErrDuplicateSwipe
	}

	now := s.now().UTC()
	swipe, err := s.swipes.Create(fromUserID, targetID, isLike, now)
	if err != nil {
		return SwipeResult{}, fmt.Errorf("create swipe: %w", err)
	}

	s.logger.Debug("swipe recorded",
		zap.Int64("swipe_id", swipe.ID),
		zap.Int64("from_user_id", fromUserID),
		zap.Int64("to_user_id", targetID),
		zap.Bool("is_like", isLike),
	)

	if !isLike {
		return SwipeResult{}, nil
	}

	liked, exists := s.swipes.IsLike(targetID, fromUserID)
	if !exists || !liked {
		return SwipeResult{}, nil
	}

	matched, ok := s.users.Get(targetID)
	if !ok {
		// The reciprocal swipe points at a user that has since been replaced
		// by a bulk load; there is nobody to match with.
		return SwipeResult{}, nil
	}

	match, err := s.matches.Create(fromUserID, targetID, now)
	if err != nil {
		return SwipeResult{}, fmt.Errorf("create match: %w", err)
	}

	s.logger.Info("match created",
		zap.Int64("match_id", match.ID),
		zap.Int64("user_a_id", match.UserAID),
		zap.Int64("user_b_id", match.UserBID),
		zap.Time("matched_at", match.CreatedAt),
	)

	return SwipeResult{
		MatchCreated: true,
		MatchedWith:  &matched,
		MatchedAt:    match.CreatedAt,
	}, nil
}

// Matches returns the session user's match list in creation order. Both
// participants of a match see the same matched_at.
func (s *Service) Matches(ctx context.Context, sessionID string) ([]MatchItem, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrInvalidSession
	}

	currentID := session.User.ID
	records := s.matches.ListForUser(currentID)
	items := make([]MatchItem, 0, len(records))
	for _, m := range records {
		otherID := m.Other(currentID)
		item := MatchItem{
			UserID:    otherID,
			MatchedAt: m.CreatedAt,
		}
		if other, ok := s.users.Get(otherID); ok {
			item.FirstName = other.FirstName
			item.LastName = other.LastName
		}
		items = append(items, item)
	}
	return items, nil
}

// ResetMatches deletes every match involving the session's user together with
// all of the user's outgoing swipes. Swipes others made toward the user are
// kept, so their candidate feeds are unaffected.
func (s *Service) ResetMatches(ctx context.Context, sessionID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return ErrInvalidSession
	}

	currentID := session.User.ID
	removedMatches := s.matches.DeleteByUser(currentID)
	removedSwipes := s.swipes.DeleteByActor(currentID)

	s.logger.Info("matches reset",
		zap.Int64("user_id", currentID),
		zap.Int("matches_removed", removedMatches),
		zap.Int("swipes_removed", removedSwipes),
	)
	return nil
}

func (s *Service) ready() error {
	if s.users == nil || s.swipes == nil || s.matches == nil || s.sessions == nil {
		return fmt.Errorf("matching dependencies are not configured")
	}
	return nil
}

func newSessionID() string {
	return "session_" + uuid.NewString()
}
