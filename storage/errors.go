package storage

import "errors"

// Storage package errors.
var (
	// ErrPostNotFound is returned when no post matches the given id.
	ErrPostNotFound = errors.New("post not found")
)
