package model

import "time"

type Swipe struct {
	ID         int64     `json:"id"`
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	IsLike     bool      `json:"is_like"`
	CreatedAt  time.Time `json:"created_at"`
}
