package trivia

import (
	"errors"
	"fmt"
)

// Common errors surfaced to the transport layer.
var (
	// ErrNotFound covers every zero-result outcome the caller can
	// recover from by choosing different parameters: an unknown id,
	// a page past the end, a category filter with no matches.
	ErrNotFound = errors.New("resource not found")
)

// ValidationError reports a create request missing a required field.
// It is the caller's fault and always precedes any store mutation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PersistenceError reports a storage write failure. Unlike a
// ValidationError it is not caller-correctable and gets logged for
// operator attention, even though both surface as unprocessable.
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
