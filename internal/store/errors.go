package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation names an id that is not in the collection
var ErrNotFound = errors.New("task not found")

// ValidationError reports a required field that is missing or invalid
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// PersistenceError wraps a failure to read or write the storage slot
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s tasks: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
