package registrationdb

import "errors"

var (
	// ErrNotFound is returned when no registration matches.
	ErrNotFound = errors.New("registration not found")

	// ErrDuplicate is returned when the participant is already registered
	// for the event.
	ErrDuplicate = errors.New("already registered for this event")

	// ErrTeamNotFound is returned when no team matches.
	ErrTeamNotFound = errors.New("team not found")

	// ErrUnknownReference is returned when a user, event or team foreign key
	// is violated.
	ErrUnknownReference = errors.New("referenced record does not exist")
)
