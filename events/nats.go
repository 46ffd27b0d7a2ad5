package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"postboard/storage"
)

// NatsPublisher publishes post lifecycle events to NATS subjects.
type NatsPublisher struct {
	nc *nats.Conn
}

// NewNatsPublisher creates a publisher over an established NATS connection.
func NewNatsPublisher(nc *nats.Conn) *NatsPublisher {
	return &NatsPublisher{nc: nc}
}

// PostEvent is the wire format for post.created and post.updated.
type PostEvent struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	MediaCount int       `json:"media_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *NatsPublisher) PublishPostCreated(ctx context.Context, post *storage.Post) error {
	return p.publishPost(SubjectPostCreated, post)
}

func (p *NatsPublisher) PublishPostUpdated(ctx context.Context, post *storage.Post) error {
	return p.publishPost(SubjectPostUpdated, post)
}

func (p *NatsPublisher) PublishPostDeleted(ctx context.Context, postID string) error {
	return p.nc.Publish(SubjectPostDeleted, []byte(postID))
}

func (p *NatsPublisher) publishPost(subject string, post *storage.Post) error {
	event := PostEvent{
		ID:         post.ID,
		Title:      post.Title,
		MediaCount: len(post.Media),
		CreatedAt:  post.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling error: %w", err)
	}

	return p.nc.Publish(subject, data)
}

// Compile-time check
var _ Publisher = (*NatsPublisher)(nil)
