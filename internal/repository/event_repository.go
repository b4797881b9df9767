package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
)

// EventRepository хранит журнал взаимодействий. Записи только добавляются.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository создаёт экземпляр репозитория.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create добавляет событие в журнал.
func (r *EventRepository) Create(ctx context.Context, event *models.ShareEvent) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO share_events (id, user_id, post_id, action, created_at)
		VALUES (:id, :user_id, :post_id, :action, :created_at)
	`, event)
	if err != nil {
		return fmt.Errorf("event repository: create %w", err)
	}

	return nil
}

type actionCount struct {
	Action string `db:"action"`
	Count  int64  `db:"count"`
}

// StatsByUser группирует события пользователя по точному значению action.
func (r *EventRepository) StatsByUser(ctx context.Context, userID string) (*models.UserStats, error) {
	var rows []actionCount
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT action, COUNT(*) AS count
		FROM share_events
		WHERE user_id = $1
		GROUP BY action
	`, userID); err != nil {
		return nil, fmt.Errorf("event repository: stats by user %w", err)
	}

	stats := &models.UserStats{SharesByPlatform: make(map[string]int64, len(rows))}
	for _, row := range rows {
		stats.SharesByPlatform[row.Action] = row.Count
		stats.TotalShares += row.Count
	}

	return stats, nil
}
