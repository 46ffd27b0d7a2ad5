// Package api exposes the post store as a JSON REST API.
package api

import (
	"net/http"

	"postboard/notifier"
	"postboard/ui/service"
)

// Config holds API router configuration.
type Config struct {
	// Logger for structured logging.
	Logger Logger
}

// Logger interface for structured logging.
// Compatible with *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// router holds the API router state.
type router struct {
	svc     *service.Service
	changes *notifier.Notifier
	config  *Config
}

// NewRouter creates the API router. The changes notifier feeds the SSE
// endpoint and may be nil, in which case /api/events only sends keepalives.
func NewRouter(svc *service.Service, changes *notifier.Notifier, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{}
	}

	r := &router{
		svc:     svc,
		changes: changes,
		config:  cfg,
	}

	mux := http.NewServeMux()

	// Posts CRUD
	mux.HandleFunc("GET /api/posts", r.handleListPosts)
	mux.HandleFunc("POST /api/posts", r.handleCreatePost)
	mux.HandleFunc("PUT /api/posts/{id}", r.handleUpdatePost)
	mux.HandleFunc("DELETE /api/posts/{id}", r.handleDeletePost)
	mux.HandleFunc("DELETE /api/posts", r.handleDeleteAllPosts)

	// Live updates
	mux.HandleFunc("GET /api/events", r.handleEvents)

	return mux
}

func (rt *router) logError(msg string, args ...any) {
	if rt.config.Logger != nil {
		rt.config.Logger.Error(msg, args...)
	}
}
