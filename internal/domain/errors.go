package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks operations on ids that no longer exist in the current
// snapshot. Wrap it with context: fmt.Errorf("category %d: %w", id, ErrNotFound).
var ErrNotFound = errors.New("not found")

// ValidationError rejects malformed input before any state is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// InvalidTransitionError rejects a board move not present in the transition
// table.
type InvalidTransitionError struct {
	From, To  OrderStatus
	OrderType string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s for %s order", e.From, e.To, e.OrderType)
}

// PersistenceError wraps snapshot read/write failures. Domain mutations
// succeed even when the subsequent save fails; callers log and move on.
type PersistenceError struct {
	Op  string // "load" | "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("snapshot %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
