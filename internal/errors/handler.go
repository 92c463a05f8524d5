package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/chonky/internal/bignum"
)

// ColorProvider supplies terminal color codes without importing the ui package.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider provides no color codes.
type DefaultColorProvider struct{}

func (DefaultColorProvider) Yellow() string { return "" }
func (DefaultColorProvider) Red() string    { return "" }
func (DefaultColorProvider) Reset() string  { return "" }

// undefinedCauses are engine errors meaning "no result exists for these operands".
var undefinedCauses = []error{
	bignum.ErrDivisionByZero,
	bignum.ErrNotMersenne,
	bignum.ErrNegativeExponent,
}

// ExitCodeFor maps an error to the process exit code without printing anything.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case bignum.IsResourceError(err):
		return ExitErrorResource
	}
	var cfgErr ConfigError
	var valErr ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
		return ExitErrorConfig
	}
	var memErr MemoryError
	if errors.As(err, &memErr) {
		return ExitErrorResource
	}
	for _, cause := range undefinedCauses {
		if errors.Is(err, cause) {
			return ExitErrorUndefined
		}
	}
	return ExitErrorGeneric
}

// HandleCalculationError prints a status line for a failed operation and
// returns the matching exit code.
//
// Parameters:
//   - err: The error that occurred.
//   - duration: How long the operation ran before failing; zero omits it.
//   - out: Destination of the status line.
//   - colors: Terminal color codes; nil means no colors.
//
// Returns:
//   - int: The exit code for the error class.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", suffix)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), suffix, colors.Reset())
	case ExitErrorUndefined:
		fmt.Fprintf(out, "Status: %sAbsent result%s. %v\n", colors.Red(), colors.Reset(), err)
	case ExitErrorResource:
		fmt.Fprintf(out, "Status: %sResource exhausted%s%s. %v\n", colors.Red(), colors.Reset(), suffix, err)
	case ExitErrorConfig:
		fmt.Fprintf(out, "Status: Invalid input. %v\n", err)
	default:
		fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	}
	return code
}
