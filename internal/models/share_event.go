package models

import "time"

// ShareEvent: неизменяемая запись о взаимодействии пользователя с постом.
type ShareEvent struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	PostID    string    `db:"post_id" json:"post_id"`
	Action    string    `db:"action" json:"action"`
	Timestamp time.Time `db:"created_at" json:"timestamp"`
}

// UserStats: агрегированная статистика действий пользователя.
type UserStats struct {
	TotalShares      int64            `json:"total_shares"`
	SharesByPlatform map[string]int64 `json:"shares_by_platform"`
}
