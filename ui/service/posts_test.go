package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"postboard/storage"
)

// fakeStore is an in-memory Store for unit tests.
type fakeStore struct {
	posts     []*storage.Post
	lastMedia []string
	err       error
}

func (f *fakeStore) EnsureSchema(ctx context.Context) error { return f.err }

func (f *fakeStore) ListPosts(ctx context.Context) ([]*storage.Post, error) {
	return f.posts, f.err
}

func (f *fakeStore) CreatePost(ctx context.Context, title, content string, media []string) (*storage.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastMedia = media
	post := &storage.Post{
		ID:        "fake-id",
		Title:     title,
		Content:   content,
		Media:     media,
		CreatedAt: time.Now(),
	}
	f.posts = append(f.posts, post)
	return post, nil
}

func (f *fakeStore) UpdatePost(ctx context.Context, id, title, content string, media []string) (*storage.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastMedia = media
	for _, p := range f.posts {
		if p.ID == id {
			p.Title, p.Content, p.Media = title, content, media
			return p, nil
		}
	}
	return nil, storage.ErrPostNotFound
}

func (f *fakeStore) DeletePost(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return storage.ErrPostNotFound
}

func (f *fakeStore) DeleteAllPosts(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.posts = nil
	return nil
}

// recordingPublisher counts published events.
type recordingPublisher struct {
	created []string
	updated []string
	deleted []string
	err     error
}

func (r *recordingPublisher) PublishPostCreated(ctx context.Context, post *storage.Post) error {
	r.created = append(r.created, post.ID)
	return r.err
}

func (r *recordingPublisher) PublishPostUpdated(ctx context.Context, post *storage.Post) error {
	r.updated = append(r.updated, post.ID)
	return r.err
}

func (r *recordingPublisher) PublishPostDeleted(ctx context.Context, postID string) error {
	r.deleted = append(r.deleted, postID)
	return r.err
}

func TestCreatePost_RequiresTitle(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, nil, nil)

	for _, title := range []string{"", "   ", "\t"} {
		_, err := svc.CreatePost(context.Background(), title, "content", nil)
		if !errors.Is(err, ErrTitleRequired) {
			t.Errorf("title %q: expected ErrTitleRequired, got %v", title, err)
		}
	}
	if len(store.posts) != 0 {
		t.Errorf("Expected store untouched, got %d posts", len(store.posts))
	}
}

func TestCreatePost_NormalizesNilMedia(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, nil, nil)

	post, err := svc.CreatePost(context.Background(), "title", "", nil)
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if store.lastMedia == nil {
		t.Error("Expected media normalized to empty slice, store got nil")
	}
	if post.Media == nil || len(post.Media) != 0 {
		t.Errorf("Expected empty media, got %v", post.Media)
	}
}

func TestCreatePost_PreservesMediaOrder(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, nil, nil)

	media := []string{"u2", "u1", "u2"}
	post, err := svc.CreatePost(context.Background(), "title", "", media)
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if len(post.Media) != 3 || post.Media[0] != "u2" || post.Media[1] != "u1" || post.Media[2] != "u2" {
		t.Errorf("Expected media order preserved with no dedup, got %v", post.Media)
	}
}

func TestCreatePost_PublishesEvent(t *testing.T) {
	pub := &recordingPublisher{}
	svc := New(&fakeStore{}, pub, nil)

	post, err := svc.CreatePost(context.Background(), "title", "", nil)
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if len(pub.created) != 1 || pub.created[0] != post.ID {
		t.Errorf("Expected one post.created event for %s, got %v", post.ID, pub.created)
	}
}

func TestCreatePost_PublishFailureDoesNotFailRequest(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := New(&fakeStore{}, pub, nil)

	if _, err := svc.CreatePost(context.Background(), "title", "", nil); err != nil {
		t.Fatalf("Expected create to succeed despite publish failure, got %v", err)
	}
}

func TestUpdatePost_RequiresTitle(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, nil, nil)

	_, err := svc.UpdatePost(context.Background(), "any", "", "content", nil)
	if !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("Expected ErrTitleRequired, got %v", err)
	}
}

func TestUpdatePost_NotFoundPassesThrough(t *testing.T) {
	svc := New(&fakeStore{}, nil, nil)

	_, err := svc.UpdatePost(context.Background(), "missing", "title", "", nil)
	if !errors.Is(err, storage.ErrPostNotFound) {
		t.Fatalf("Expected ErrPostNotFound, got %v", err)
	}
}

func TestUpdatePost_PublishesEvent(t *testing.T) {
	store := &fakeStore{}
	pub := &recordingPublisher{}
	svc := New(store, pub, nil)

	post, _ := svc.CreatePost(context.Background(), "title", "", nil)
	if _, err := svc.UpdatePost(context.Background(), post.ID, "new title", "", nil); err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}
	if len(pub.updated) != 1 || pub.updated[0] != post.ID {
		t.Errorf("Expected one post.updated event, got %v", pub.updated)
	}
}

func TestDeletePost_PublishesEvent(t *testing.T) {
	store := &fakeStore{}
	pub := &recordingPublisher{}
	svc := New(store, pub, nil)

	post, _ := svc.CreatePost(context.Background(), "title", "", nil)
	if err := svc.DeletePost(context.Background(), post.ID); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if len(pub.deleted) != 1 || pub.deleted[0] != post.ID {
		t.Errorf("Expected one post.deleted event, got %v", pub.deleted)
	}
}

func TestDeletePost_NotFoundPublishesNothing(t *testing.T) {
	pub := &recordingPublisher{}
	svc := New(&fakeStore{}, pub, nil)

	err := svc.DeletePost(context.Background(), "missing")
	if !errors.Is(err, storage.ErrPostNotFound) {
		t.Fatalf("Expected ErrPostNotFound, got %v", err)
	}
	if len(pub.deleted) != 0 {
		t.Errorf("Expected no events, got %v", pub.deleted)
	}
}
