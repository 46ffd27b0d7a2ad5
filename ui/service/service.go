// Package service sits between the HTTP handlers and the post store.
// It owns input validation and event publication; persistence stays in
// storage and status codes stay in the handlers.
package service

import (
	"postboard/events"
	"postboard/storage"
)

// Logger interface for structured logging.
// Compatible with *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Service provides post operations.
type Service struct {
	store     storage.Store
	publisher events.Publisher
	logger    Logger
}

// New creates a new Service. A nil publisher disables event publication;
// a nil logger disables logging.
func New(store storage.Store, publisher events.Publisher, logger Logger) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// Store returns the underlying store.
func (s *Service) Store() storage.Store {
	return s.store
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
