package accommodationdb

import "errors"

var (
	// ErrNotFound is returned when no accommodation matches.
	ErrNotFound = errors.New("accommodation not found")

	// ErrUserNotFound is returned when the requesting user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidStay is returned when a CHECK constraint rejects the dates
	// or the budget.
	ErrInvalidStay = errors.New("invalid accommodation values")
)
