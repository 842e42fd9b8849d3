package judgedb

import "errors"

var (
	ErrNotFound = errors.New("judge assignment not found")

	// ErrDuplicate is returned when the judge is already assigned to the event.
	ErrDuplicate = errors.New("judge already assigned to this event")

	ErrUnknownReference = errors.New("judge or event does not exist")
)
