package store

import "errors"

var (
	// ErrEmailTaken is returned when registering an email that already
	// exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotFound is returned when a record does not exist or is not
	// owned by the requesting user; the two cases are indistinguishable.
	ErrNotFound = errors.New("record not found")
)
