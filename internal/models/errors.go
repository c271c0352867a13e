package models

import (
	"errors"
	"fmt"
)

var (
	ErrReadOnlyColumn = errors.New("column is read-only")
	ErrCellOutOfRange = errors.New("cell out of range")
)

// ValidationError is a user-correctable problem with a field value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("film not found: %d", e.ID)
}

// ConstraintError is returned by the store when asked to persist a record
// that breaks the field rules.
type ConstraintError struct {
	Err error
}

func (e ConstraintError) Error() string {
	return "constraint violated: " + e.Err.Error()
}

func (e ConstraintError) Unwrap() error { return e.Err }

type IOError struct {
	Path string
	Err  error
}

func (e IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e IOError) Unwrap() error { return e.Err }

// ParseError means the id cell of a grid row did not hold an integer.
type ParseError struct {
	Value string
	Err   error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("invalid id %q", e.Value)
}

func (e ParseError) Unwrap() error { return e.Err }

// UpdateError wraps a failure to write an edited grid row back to the store.
type UpdateError struct {
	Row int
	Err error
}

func (e UpdateError) Error() string {
	return fmt.Sprintf("update row %d: %v", e.Row, e.Err)
}

func (e UpdateError) Unwrap() error { return e.Err }
