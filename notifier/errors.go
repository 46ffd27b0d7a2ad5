package notifier

import "errors"

// Notifier package errors.
var (
	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("notifier: already started")

	// ErrNotStarted is returned when Stop is called before Start.
	ErrNotStarted = errors.New("notifier: not started")
)
