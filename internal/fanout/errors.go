package fanout

import "errors"

var (
	// ErrInvalidEvent is returned when the event lacks a sender or channel id.
	// It wraps the validator.ValidationErrors naming the offending fields.
	ErrInvalidEvent = errors.New("invalid message event")

	// ErrChannelNotFound is returned when the event's channel does not exist.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrSenderNotFound is returned when the sender has no user profile.
	ErrSenderNotFound = errors.New("sender not found")

	// ErrDirectoryFailure wraps any other directory store error.
	ErrDirectoryFailure = errors.New("directory lookup failed")
)
