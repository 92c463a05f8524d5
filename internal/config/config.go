// Package config defines the chonky command configuration: flag parsing,
// CHONKY_* environment overrides and semantic validation.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/chonky/internal/errors"
	"github.com/agbru/chonky/internal/logging"
)

// EnvPrefix is the prefix for every environment variable read by chonky.
const EnvPrefix = "CHONKY_"

// Default configuration values.
const (
	// DefaultTimeout bounds a single evaluation or a whole self-check run.
	DefaultTimeout = time.Minute
	// DefaultSamples is the number of random samples drawn per self-check property.
	DefaultSamples = 200
	// DefaultBits is the operand size used by the self-check, matching a
	// 512-bit cryptographic workload.
	DefaultBits = 512
	// DefaultOracle is the reference implementation used by the self-check.
	DefaultOracle = "big"
	// MaxBits caps the self-check operand size.
	MaxBits = 1 << 16
)

// AppConfig holds every setting of a chonky invocation.
type AppConfig struct {
	// Op is the operation to evaluate, for example "power_mod_mersenne".
	Op string
	// A, B and M are the hexadecimal operands. M is the modulus of the
	// three-operand operations.
	A, B, M string
	// Timeout bounds the evaluation or the self-check run.
	Timeout time.Duration

	// SelfCheck runs the randomized property checks instead of one operation.
	SelfCheck bool
	// Samples is the number of random samples per property.
	Samples int
	// Bits is the operand size of the random samples.
	Bits int
	// Seed makes a self-check run reproducible. Zero picks a time-based seed.
	Seed int64
	// Workers bounds concurrent checks. Zero means GOMAXPROCS.
	Workers int
	// Oracle selects the reference implementation ("big", or "gmp" when built
	// with the gmp tag).
	Oracle string

	// Quiet prints only the bare result, for scripting.
	Quiet bool
	// Details adds widths, timing, memory and CPU information.
	Details bool
	// OutputFile, if set, also writes the result to this path.
	OutputFile string
	// Metrics dumps the operation metrics in Prometheus text format on exit.
	Metrics bool
	// LogLevel is the zerolog level name.
	LogLevel string
	// NoColor disables ANSI colors. NO_COLOR is honored as well.
	NoColor bool
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableOps: Valid operation names.
//   - availableOracles: Valid oracle names for the self-check.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate(availableOps, availableOracles []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.SelfCheck {
		if c.Samples < 1 {
			return apperrors.NewConfigError("samples must be at least 1: %d", c.Samples)
		}
		if c.Bits < 8 || c.Bits > MaxBits {
			return apperrors.NewConfigError("bits must be within [8, %d]: %d", MaxBits, c.Bits)
		}
		if c.Workers < 0 {
			return apperrors.NewConfigError("workers cannot be negative: %d", c.Workers)
		}
		if !slices.Contains(availableOracles, c.Oracle) {
			return apperrors.NewConfigError("unrecognized oracle: '%s'. Valid oracles are: [%s]", c.Oracle, strings.Join(availableOracles, ", "))
		}
		return nil
	}
	if c.Op == "" {
		return apperrors.NewConfigError("an operation is required: use -op or -self-check")
	}
	if !slices.Contains(availableOps, c.Op) {
		return apperrors.NewConfigError("unrecognized operation: '%s'. Valid operations are: [%s]", c.Op, strings.Join(availableOps, ", "))
	}
	return nil
}

// ParseConfig parses args into an AppConfig, applies environment overrides to
// flags that were not given on the command line, and validates the result.
//
// Parameters:
//   - programName: Name shown in the usage message.
//   - args: Arguments without the program name.
//   - errorWriter: Destination of parse errors and usage.
//   - availableOps: Valid operation names.
//   - availableOracles: Valid oracle names.
//
// Returns:
//   - AppConfig: The populated configuration.
//   - error: flag.ErrHelp for -h, a parse error, or an invalid configuration error.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableOps, availableOracles []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Op, "op", "", fmt.Sprintf("Operation to evaluate, one of [%s].", strings.Join(availableOps, ", ")))
	fs.StringVar(&config.A, "a", "", "First operand, hexadecimal with optional sign and 0x prefix.")
	fs.StringVar(&config.B, "b", "", "Second operand (divisor, modulus or exponent).")
	fs.StringVar(&config.M, "m", "", "Modulus of power_mod and power_mod_mersenne.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")

	fs.BoolVar(&config.SelfCheck, "self-check", false, "Run the randomized property self-check.")
	fs.IntVar(&config.Samples, "samples", DefaultSamples, "Random samples per property in self-check mode.")
	fs.IntVar(&config.Bits, "bits", DefaultBits, "Operand size in bits in self-check mode.")
	fs.Int64Var(&config.Seed, "seed", 0, "Self-check seed (0 picks one from the clock).")
	fs.IntVar(&config.Workers, "workers", 0, "Concurrent self-check workers (0 uses GOMAXPROCS).")
	fs.StringVar(&config.Oracle, "oracle", DefaultOracle, fmt.Sprintf("Reference implementation, one of [%s].", strings.Join(availableOracles, ", ")))

	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Details, "details", false, "Display widths, timing, memory and CPU details.")
	fs.BoolVar(&config.Details, "d", false, "Alias for -details.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print operation metrics in Prometheus text format on exit.")
	fs.StringVar(&config.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error or disabled.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Op = strings.ToLower(strings.TrimSpace(config.Op))
	config.Oracle = strings.ToLower(config.Oracle)
	if err := config.Validate(availableOps, availableOracles); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.Join(errors.New("invalid configuration"), err)
	}
	return config, nil
}
