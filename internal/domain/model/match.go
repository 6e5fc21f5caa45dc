package model

import "time"

// Match is stored once per pair. UserAID is always the smaller id so the
// unordered pair has a single canonical form; per-user match lists are
// projections over these records.
type Match struct {
	ID        int64     `json:"id"`
	UserAID   int64     `json:"user_a_id"`
	UserBID   int64     `json:"user_b_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Other returns the counterpart of userID in the match, or 0 when userID is
// not a participant.
func (m Match) Other(userID int64) int64 {
	switch userID {
	case m.UserAID:
		return m.UserBID
	case m.UserBID:
		return m.UserAID
	default:
		return 0
	}
}

func (m Match) Involves(userID int64) bool {
	return m.UserAID == userID || m.UserBID == userID
}
