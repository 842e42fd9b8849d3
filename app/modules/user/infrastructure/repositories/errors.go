package userdb

import "errors"

var (
	// ErrNotFound is returned when a user is not found.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when the e-mail is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
