package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every service. The HTTP layer maps each sentinel
// to a status code; anything else is treated as an internal error.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")

	// ErrIDTaken reports that a freshly allocated id was already stored.
	// It is a Conflict, but one the caller can resolve by allocating again.
	ErrIDTaken = fmt.Errorf("%w: id taken", ErrConflict)
)
