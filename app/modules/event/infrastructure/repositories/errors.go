package eventdb

import "errors"

var (
	// ErrNotFound is returned when no event matches.
	ErrNotFound = errors.New("event not found")

	// ErrInUse is returned when other records still reference the event.
	ErrInUse = errors.New("event is referenced by other records")

	// ErrUnknownVenue is returned when the venue foreign key is violated.
	ErrUnknownVenue = errors.New("venue does not exist")
)
