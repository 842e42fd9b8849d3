package financedb

import "errors"

var (
	// ErrNotFound is returned when no sponsorship matches.
	ErrNotFound = errors.New("sponsorship not found")

	// ErrUnknownReference is returned when a user, event or sponsorship
	// foreign key is violated.
	ErrUnknownReference = errors.New("referenced record does not exist")

	// ErrInvalidAmount is returned when the amount CHECK constraint rejects a row.
	ErrInvalidAmount = errors.New("amount out of range")
)
