package venuedb

import "errors"

var (
	// ErrNotFound is returned when no venue matches.
	ErrNotFound = errors.New("venue not found")

	// ErrInUse is returned when a venue still has events booked.
	ErrInUse = errors.New("venue has scheduled events")
)
