// Package logging provides the structured logging interface used across the
// engine boundary, the self-check runner and the command. The default backend
// is zerolog; a log.Logger adapter exists for embedding hosts that already
// own a standard logger.
package logging
