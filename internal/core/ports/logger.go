// Package ports defines the narrow collaborator contracts for spoolsync.
package ports

import "io"

// Logger is the injected logging capability. It is never a global; every
// component that logs receives one.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a message visible only in verbose mode.
	Debug(msg string)

	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error.
	Error(err error)

	// SetOutput updates the logger's output destination.
	SetOutput(w io.Writer)

	// SetVerbose enables or disables debug-level output.
	SetVerbose(enabled bool)
}
