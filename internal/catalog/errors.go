package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the catalog source does not exist or cannot be fetched.
	ErrSourceNotFound = errors.New("catalog source not found")
	// ErrMalformedRecord is wrapped by every RecordError.
	ErrMalformedRecord = errors.New("malformed catalog record")
)

// RecordError points at the CSV line and column that failed validation.
type RecordError struct {
	Line   int
	Column string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
}

func (e *RecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}
