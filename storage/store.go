// Package storage persists dashboard posts in PostgreSQL.
package storage

import (
	"context"
	"time"
)

// ChannelPostsChanged is the NOTIFY channel fired after every committed
// mutation. Payload contains JSON: {"op": "created|updated|deleted|cleared", "id": "..."}
const ChannelPostsChanged = "postboard_posts_changed"

// Store defines the storage interface for posts.
type Store interface {
	// EnsureSchema creates the posts table if it does not exist.
	// Safe to run repeatedly.
	EnsureSchema(ctx context.Context) error

	// ListPosts returns all posts, newest first.
	ListPosts(ctx context.Context) ([]*Post, error)

	// CreatePost stores a new post, assigning its ID and CreatedAt.
	CreatePost(ctx context.Context, title, content string, media []string) (*Post, error)

	// UpdatePost replaces title, content and media of an existing post.
	// ID and CreatedAt never change. Returns ErrPostNotFound if no row
	// matches the id.
	UpdatePost(ctx context.Context, id, title, content string, media []string) (*Post, error)

	// DeletePost removes a single post. Returns ErrPostNotFound if no
	// row matches the id.
	DeletePost(ctx context.Context, id string) error

	// DeleteAllPosts removes every post. Deleting from an empty table
	// is not an error.
	DeleteAllPosts(ctx context.Context) error
}

// Post represents a stored dashboard post.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Media     []string  `json:"media"` // ordered, never nil
	CreatedAt time.Time `json:"createdAt"`
}
