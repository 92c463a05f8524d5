// Package apperrors defines the structured error types and exit codes of the
// chonky command. It separates user mistakes (configuration, validation) from
// operations that have no defined result for their operands and from
// operational failures (timeouts, cancellation, resource limits).
//
// Engine failures surface as bignum sentinel errors; this package only maps
// them to exit codes and user-facing messages. All types implement Unwrap
// where they carry a cause, so errors.Is and errors.As see through them.
package apperrors
