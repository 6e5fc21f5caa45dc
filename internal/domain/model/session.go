package model

import "time"

type Session struct {
	ID        string    `json:"session_id"`
	User      User      `json:"user"`
	StartedAt time.Time `json:"started_at"`
}
