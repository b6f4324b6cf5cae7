package repositories

import (
	"errors"
	"fmt"
)

// Validation reasons.
const (
	ReasonNoPhotos         = "noPhotos"
	ReasonMissingCustomer  = "missingCustomer"
	ReasonInvalidDateRange = "invalidDateRange"
	ReasonInvalidField     = "invalidField"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports a missing or malformed required field. Nothing has
// been written when it is returned.
type ValidationError struct {
	Reason string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("validation failed (%s): %s", e.Reason, e.Detail)
	}
	return fmt.Sprintf("validation failed (%s)", e.Reason)
}

// ReferenceError reports that a referenced user or listing does not exist.
type ReferenceError struct {
	Entity string
	ID     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q does not exist", e.Entity, e.ID)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

type ConflictError struct {
	Entity string
	Field  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
}

// PersistenceError wraps a failure of the document store itself.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
