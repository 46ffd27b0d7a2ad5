package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store using PostgreSQL with pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the posts table if absent. It is the target of the
// startup readiness retry and must stay idempotent.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			content TEXT,
			media TEXT[],
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure posts schema: %w", err)
	}
	return nil
}

// ListPosts returns all posts ordered newest first. The id tie-break keeps
// the order deterministic for posts created in the same instant.
func (s *PostgresStore) ListPosts(ctx context.Context) ([]*Post, error) {
	query := `
		SELECT id, title, COALESCE(content, ''), COALESCE(media, '{}'), created_at
		FROM posts
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// CreatePost inserts a new post with a generated UUID and the current time.
func (s *PostgresStore) CreatePost(ctx context.Context, title, content string, media []string) (*Post, error) {
	post := &Post{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Media:     normalizeMedia(media),
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO posts (id, title, content, media, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.pool.Exec(ctx, query, post.ID, post.Title, post.Content, post.Media, post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.notifyChanged(ctx, "created", post.ID)
	return post, nil
}

// UpdatePost replaces the mutable fields of an existing post.
func (s *PostgresStore) UpdatePost(ctx context.Context, id, title, content string, media []string) (*Post, error) {
	query := `
		UPDATE posts
		SET title = $1, content = $2, media = $3
		WHERE id = $4
		RETURNING id, title, COALESCE(content, ''), COALESCE(media, '{}'), created_at
	`

	row := s.pool.QueryRow(ctx, query, title, content, normalizeMedia(media), id)
	post, err := scanPost(row)
	if err == pgx.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.notifyChanged(ctx, "updated", post.ID)
	return post, nil
}

// DeletePost removes a single post by id.
func (s *PostgresStore) DeletePost(ctx context.Context, id string) error {
	cmdTag, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	s.notifyChanged(ctx, "deleted", id)
	return nil
}

// DeleteAllPosts truncates the dashboard. Idempotent on an empty table.
func (s *PostgresStore) DeleteAllPosts(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM posts`); err != nil {
		return fmt.Errorf("failed to delete all posts: %w", err)
	}

	s.notifyChanged(ctx, "cleared", "")
	return nil
}

// notifyChanged fires a best-effort NOTIFY so listeners can refresh.
// Live updates are advisory; a failed NOTIFY never fails the mutation.
func (s *PostgresStore) notifyChanged(ctx context.Context, op, id string) {
	payload, err := json.Marshal(map[string]string{"op": op, "id": id})
	if err != nil {
		return
	}
	_, _ = s.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, ChannelPostsChanged, string(payload))
}

func scanPost(row pgx.Row) (*Post, error) {
	var p Post
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Media, &p.CreatedAt); err != nil {
		return nil, err
	}
	if p.Media == nil {
		p.Media = []string{}
	}
	return &p, nil
}

// normalizeMedia keeps the media column non-null so every post round-trips
// with an empty sequence rather than an absent one.
func normalizeMedia(media []string) []string {
	if media == nil {
		return []string{}
	}
	return media
}
