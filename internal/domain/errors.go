package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrEmptyMessage indicates a blank chat submission
	ErrEmptyMessage = errors.New("message is empty")
	// ErrTurnInFlight indicates a chat turn is already pending for the session
	ErrTurnInFlight = errors.New("a chat turn is already in flight")
	// ErrSessionNotFound indicates an unknown or expired chat session
	ErrSessionNotFound = errors.New("chat session not found")
)
