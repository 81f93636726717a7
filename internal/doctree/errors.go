package doctree

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrInvariant is matched by every *InvariantError.
	ErrInvariant = errors.New("tree invariant violated")
)

// ValidationError rejects user input, e.g. a blank folder name.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvariantError reports structural corruption: a duplicate id, a dangling or non-folder
// parent, a cycle, or a trail that disagrees with the current folder.
type InvariantError struct {
	EntryID int64
	Reason  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: entry %d: %s", ErrInvariant, e.EntryID, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}
