package model

import (
	"errors"
	"fmt"
)

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrNotAuthenticated = errors.New("no authenticated user")
)

// ValidationError names the offending field so the caller can surface a
// specific missing-field message. Trade-only forcing price to zero is a
// defined normalization and never produces one of these.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation on an id absent from the repository.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("listing %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrListingNotFound
}

// PersistenceError wraps a snapshot load/save failure. Save failures are
// surfaced but never roll back the in-memory mutation that triggered them.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("snapshot %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
