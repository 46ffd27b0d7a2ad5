package service

import "errors"

// Service package errors.
var (
	// ErrTitleRequired is returned when a post is submitted without a title.
	ErrTitleRequired = errors.New("title is required")
)
