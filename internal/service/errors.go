package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed input. Wrapped with detail.
	ErrValidation = errors.New("validation error")
	// ErrNotFoundOrForbidden covers both an absent id and someone else's id.
	ErrNotFoundOrForbidden = errors.New("timer not found")
	// ErrUnauthenticated is returned for owner-scoped calls without an owner.
	ErrUnauthenticated = errors.New("you must be logged in")
)

// StorageError wraps a persistence failure. It is surfaced as is and never retried here.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func validationErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
