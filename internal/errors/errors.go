package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit codes.
const (
	ExitSuccess        = 0   // The operation produced a result, or every check passed.
	ExitErrorGeneric   = 1   // An unexpected failure.
	ExitErrorTimeout   = 2   // The configured time limit was reached.
	ExitErrorMismatch  = 3   // A self-check property failed.
	ExitErrorConfig    = 4   // Invalid flags, environment or operands.
	ExitErrorUndefined = 5   // The operation is undefined for its operands.
	ExitErrorResource  = 6   // The result would exceed the magnitude limit.
	ExitErrorCanceled  = 130 // Interrupted by a signal.
)

// ConfigError reports invalid user configuration such as an unknown operation
// name or a malformed flag value.
type ConfigError struct {
	// Message describes the offending setting.
	Message string
}

// Error returns the message.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A ConfigError carrying the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError wraps the failure of an arithmetic operation together with
// the name of the operation that produced it.
type CalculationError struct {
	// Op is the operation name, for example "power_mod".
	Op string
	// Cause is the underlying engine error.
	Cause error
}

// Error returns the cause message, prefixed by the operation when known.
func (e CalculationError) Error() string {
	if e.Op == "" {
		return e.Cause.Error()
	}
	return e.Op + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause so that errors.Is can match engine sentinels.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports that an operation ran past its time limit.
type TimeoutError struct {
	// Operation names what was running.
	Operation string
	// Limit is the exceeded duration.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap lets errors.Is(err, context.DeadlineExceeded) match a TimeoutError.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ValidationError reports an operand or field that failed validation.
type ValidationError struct {
	// Field is the name of the offending input.
	Field string
	// Message explains the failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MemoryError reports that a result would need more memory than allowed.
type MemoryError struct {
	// Requested is the number of bytes the result would need.
	Requested uint64
	// Limit is the configured maximum in bytes.
	Limit uint64
}

// Error returns a formatted message describing the memory error.
func (e MemoryError) Error() string {
	return fmt.Sprintf("memory error: requested %d bytes exceeds limit of %d bytes", e.Requested, e.Limit)
}

// WrapError adds context to err with %w, so the chain stays inspectable.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a context cancellation or deadline error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
