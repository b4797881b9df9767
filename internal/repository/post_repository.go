package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/repository/common"
)

const insertPostsQuery = `
	INSERT INTO posts (id, title, content, link_url, image_url, author_name, author_avatar, channel, category, created_at)
	VALUES (:id, :title, :content, :link_url, :image_url, :author_name, :author_avatar, :channel, :category, :created_at)`

// PostRepository отвечает за каталог постов.
type PostRepository struct {
	db *sqlx.DB
}

// NewPostRepository создаёт экземпляр репозитория.
func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List возвращает посты в порядке создания. Пустая category означает все категории.
func (r *PostRepository) List(ctx context.Context, category string, limit int) ([]models.Post, error) {
	query := `SELECT * FROM posts`
	args := []interface{}{}
	argIndex := 1

	if category != "" {
		query += fmt.Sprintf(" WHERE category = $%d", argIndex)
		args = append(args, category)
		argIndex++
	}

	query += " ORDER BY created_at ASC, id ASC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
	}

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("post repository: list %w", err)
	}

	return posts, nil
}

// GetByID возвращает пост по идентификатору.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return common.GetByID[models.Post](ctx, r.db, "posts", id, ErrPostNotFound)
}

// SeedIfEmpty вставляет posts, только если таблица пуста.
// Блокировка таблицы не даёт двум одновременным запросам засеять каталог дважды.
func (r *PostRepository) SeedIfEmpty(ctx context.Context, posts []models.Post) (bool, error) {
	seeded := false

	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `LOCK TABLE posts IN SHARE ROW EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("post repository: lock %w", err)
		}

		var count int
		if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`); err != nil {
			return fmt.Errorf("post repository: count %w", err)
		}
		if count > 0 {
			return nil
		}

		if len(posts) == 0 {
			return nil
		}
		// Срез разворачивается sqlx в один INSERT ... VALUES (...), (...).
		if _, err := tx.NamedExecContext(ctx, insertPostsQuery, posts); err != nil {
			return fmt.Errorf("post repository: seed %w", err)
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}
