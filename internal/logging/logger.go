// Package logging provides a small structured-logging abstraction so the rest
// of the codebase is not coupled to a specific logging framework.
package logging

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logging interface used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a derived logger with an error field attached.
	WithError(err error) Logger

	// WithField returns a derived logger with a single field attached.
	WithField(key string, value interface{}) Logger

	// WithFields returns a derived logger with multiple fields attached.
	WithFields(fields ...Field) Logger
}
