package models

import "time"

// Post описывает пост, которым сотрудники делятся в соцсетях.
type Post struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Content      string    `db:"content" json:"content"`
	LinkURL      *string   `db:"link_url" json:"link_url"`
	ImageURL     *string   `db:"image_url" json:"image_url"`
	AuthorName   *string   `db:"author_name" json:"author_name"`
	AuthorAvatar *string   `db:"author_avatar" json:"author_avatar"`
	Channel      *string   `db:"channel" json:"channel"`
	Category     string    `db:"category" json:"category"`
	Timestamp    time.Time `db:"created_at" json:"timestamp"`
}
