// Package parsererror defines the error types used by the statement parsers.
//
// Only FormatError crosses the parser boundary: it marks a container that
// cannot be opened at all (wrong password, corrupt structure, unsupported
// encoding). Everything row-level is represented as a RowError, logged by the
// parser and dropped without aborting the parse.
package parsererror

import "fmt"

// FormatError reports an unreadable statement container.
type FormatError struct {
	Format string // "text", "xlsx", "xls"
	Msg    string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unreadable %s statement: %s: %v", e.Format, e.Msg, e.Err)
	}
	return fmt.Sprintf("unreadable %s statement: %s", e.Format, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError wraps a container-open failure.
func NewFormatError(format, msg string, err error) *FormatError {
	return &FormatError{Format: format, Msg: msg, Err: err}
}

// RowError reports a single statement row that failed validation or parsing.
// It never aborts a parse; parsers log it and continue with the next row.
type RowError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e *RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: %s=%q: %s", e.Row, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}
