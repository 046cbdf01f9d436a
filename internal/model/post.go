package model

import "time"

type PostStatus int

const (
	PostStatusDraft PostStatus = iota
	PostStatusPublished
)

type Post struct {
	ID              int64
	UserID          int64
	Title           string
	Body            string
	Markdown        bool
	Status          PostStatus
	PublishedAt     time.Time
	CommentsEnabled bool
	AccessRule      string
	CreatedAt       time.Time

	// RenderedBody is filled per request by the content transform and is
	// never persisted.
	RenderedBody string
}
