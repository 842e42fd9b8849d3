package scoredb

import "errors"

var (
	// ErrOutOfRange is returned when the score CHECK constraint rejects a value.
	ErrOutOfRange = errors.New("score out of range")

	ErrUnknownReference = errors.New("judge, participant or event does not exist")
)
