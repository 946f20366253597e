package domain

import "errors"

var (
	// ErrNotFound is returned when a user or candidate does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for malformed filters, pagination or edits.
	// It is always returned before any fetch or scoring work is done.
	ErrValidation = errors.New("validation failed")

	// ErrTransientDependency is returned when an external read kept failing after retries.
	ErrTransientDependency = errors.New("dependency temporarily unavailable")

	// ErrUnauthorized is returned when the requester may not see a scoped discovery context.
	ErrUnauthorized = errors.New("unauthorized")
)
