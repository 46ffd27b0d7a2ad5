package service

import (
	"context"
	"strings"

	"postboard/storage"
)

// ListPosts returns all posts, newest first.
func (s *Service) ListPosts(ctx context.Context) ([]*storage.Post, error) {
	return s.store.ListPosts(ctx)
}

// CreatePost validates and stores a new post, then publishes post.created.
func (s *Service) CreatePost(ctx context.Context, title, content string, media []string) (*storage.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	post, err := s.store.CreatePost(ctx, title, content, normalizeMedia(media))
	if err != nil {
		return nil, err
	}

	// The post is persisted; a broker failure must not fail the request.
	if err := s.publisher.PublishPostCreated(ctx, post); err != nil {
		s.logger.Warn("failed to publish post.created", "post_id", post.ID, "error", err)
	}

	return post, nil
}

// UpdatePost validates and updates an existing post, then publishes
// post.updated.
func (s *Service) UpdatePost(ctx context.Context, id, title, content string, media []string) (*storage.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	post, err := s.store.UpdatePost(ctx, id, title, content, normalizeMedia(media))
	if err != nil {
		return nil, err
	}

	if err := s.publisher.PublishPostUpdated(ctx, post); err != nil {
		s.logger.Warn("failed to publish post.updated", "post_id", post.ID, "error", err)
	}

	return post, nil
}

// DeletePost removes a single post, then publishes post.deleted.
func (s *Service) DeletePost(ctx context.Context, id string) error {
	if err := s.store.DeletePost(ctx, id); err != nil {
		return err
	}

	if err := s.publisher.PublishPostDeleted(ctx, id); err != nil {
		s.logger.Warn("failed to publish post.deleted", "post_id", id, "error", err)
	}

	return nil
}

// DeleteAllPosts removes every post. No per-post events are published; the
// operation is already observable through the posts-changed channel.
func (s *Service) DeleteAllPosts(ctx context.Context) error {
	return s.store.DeleteAllPosts(ctx)
}

// normalizeMedia keeps media an ordered, never-nil sequence. Entries are
// stored exactly as submitted; the client is responsible for trimming.
func normalizeMedia(media []string) []string {
	if media == nil {
		return []string{}
	}
	return media
}
