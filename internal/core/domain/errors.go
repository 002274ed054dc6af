package domain

import "errors"

// Sentinel errors returned by the stores. Callers match them with errors.Is;
// stores wrap them with the offending key.
var (
	// ErrNotFound is returned for an unknown semester, subject, note or PDF.
	ErrNotFound = errors.New("not found")

	// ErrInvalidIndex is returned for a unit index outside the subject's units.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidInput is returned when input fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented is returned when a required port was not wired.
	ErrNotImplemented = errors.New("not implemented")
)
