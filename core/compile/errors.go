package compile

import (
	"errors"
	"fmt"
)

// ErrInvalidTable is returned when a compiled table breaks one of its invariants.
var ErrInvalidTable = errors.New("compiled table is invalid")

// StructuralError means a document's record selector matched nothing; the
// upstream markup has likely changed.
type StructuralError struct {
	Source   string
	Selector string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: no records match %q, document structure changed", e.Source, e.Selector)
}

// MissingFieldError means a located record lacks a required sub-field.
type MissingFieldError struct {
	Source string
	Field  string
	// Row is the zero-based index of the record.
	Row int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: record %d has no %q field", e.Source, e.Row, e.Field)
}

// TransportError wraps a failed document fetch.
type TransportError struct {
	Source string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: fetch %s: %v", e.Source, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
