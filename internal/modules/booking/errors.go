package booking

import (
	"errors"
	"fmt"
)

// Sentinel categories for errors.Is checks. The concrete types below carry
// the human-readable reason naming which sub-constraint failed.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("booking conflict")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

// ValidationError rejects malformed input before any store access.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string        { return e.Message }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConflictError means the court, coach or equipment is no longer available
// for the window. Constraint is "court", "coach" or "equipment" so the
// caller can offer a corrective action instead of a generic failure.
type ConflictError struct {
	Constraint string
	Message    string
}

func (e *ConflictError) Error() string        { return e.Message }
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string        { return fmt.Sprintf("%s %v not found", e.Entity, e.ID) }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AuthorizationError means the requesting user does not own the booking.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string        { return e.Message }
func (e *AuthorizationError) Is(target error) bool { return target == ErrForbidden }
