package artifacts

import "errors"

var (
	// ErrNotFound indicates the artifact was not found.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
