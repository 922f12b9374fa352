/*
errors.go - Centralized error types for the computation engine

PURPOSE:
  All engine error types in one place. Domain packages wrap these with
  additional context; the API layer maps them to HTTP statuses.

ERROR CATEGORIES:
  1. Validation errors - inverted ranges, missing required fields
  2. Lookup errors     - referenced employee/record does not exist
  3. Persistence errors - record store write failures (propagated unchanged)

PROPAGATION POLICY:
  Calculators never catch-and-suppress. Every failure carries enough context
  (entity id, offending dates) for the caller to render a message. Batch
  operations isolate per-item failures instead of aborting the batch.

USAGE:
  if labor.IsClientError(err) { ... 400 ... }
  var nf *labor.NotFoundError
  if errors.As(err, &nf) { ... 404 ... }
*/
package labor

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRange is returned when an end date precedes its start date,
	// or a derived day count is not positive.
	ErrInvalidRange = errors.New("invalid range: end before start")

	// ErrMissingField is returned when an employee snapshot lacks a field
	// a calculation requires (hire date, monthly salary). Calculators fail
	// rather than silently defaulting seniority or accrual to zero.
	ErrMissingField = errors.New("missing required field")

	// ErrNotFound is returned when a referenced employee or record id does
	// not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyPaid is returned on a second attempt to record the annual
	// bonus payment for the same employee and year.
	ErrAlreadyPaid = errors.New("bonus already paid for year")

	// ErrPersistence is the base of store write failures. The driver error
	// is wrapped, never swallowed, so callers can retry or surface it.
	ErrPersistence = errors.New("persistence failure")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidRangeError reports the offending date pair.
type InvalidRangeError struct {
	Start Date
	End   Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: end %s before start %s", e.End, e.Start)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// MissingFieldError names the employee and the field a calculation needed.
type MissingFieldError struct {
	EmployeeID string
	Field      string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("employee %s: missing required field %q", e.EmployeeID, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// NotFoundError names the kind and id of the missing entity.
type NotFoundError struct {
	Kind string // "employee", "vacation", "absence", "receipt"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// PersistenceError wraps a store failure with the operation that failed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return ErrPersistence }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError reports whether the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrAlreadyPaid)
}

// IsNotFound reports whether the error indicates a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
