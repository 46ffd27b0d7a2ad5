// Package events publishes post lifecycle events to interested consumers.
//
// Publishing is best-effort: the post is already persisted when an event
// goes out, so a broker failure must never fail the originating request.
package events

import (
	"context"

	"postboard/storage"
)

// Subjects for post lifecycle events.
const (
	SubjectPostCreated = "post.created"
	SubjectPostUpdated = "post.updated"
	SubjectPostDeleted = "post.deleted"
)

// Publisher emits post lifecycle events.
type Publisher interface {
	PublishPostCreated(ctx context.Context, post *storage.Post) error
	PublishPostUpdated(ctx context.Context, post *storage.Post) error
	PublishPostDeleted(ctx context.Context, postID string) error
}

// NoopPublisher discards all events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishPostCreated(ctx context.Context, post *storage.Post) error { return nil }
func (NoopPublisher) PublishPostUpdated(ctx context.Context, post *storage.Post) error { return nil }
func (NoopPublisher) PublishPostDeleted(ctx context.Context, postID string) error      { return nil }
