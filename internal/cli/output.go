// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatMagnitude].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/chonky/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet prints only the bare values.
	Quiet bool
	// Details adds widths and timing to the standard display.
	Details bool
}

// WriteResultToFile writes res to config.OutputFile with a commented header.
// It does nothing when no file is configured.
func WriteResultToFile(res Result, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# chonky result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", res.Op)
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	for _, v := range res.Values {
		fmt.Fprintf(file, "# %s: %d bytes, %d bits\n", v.Label, len(v.Magnitude), v.BitLen())
	}
	fmt.Fprintf(file, "\n")
	for _, v := range res.Values {
		fmt.Fprintf(file, "%s = %s\n", v.Label, v.Hex())
	}
	return file.Sync()
}

// FormatQuietResult returns the values, one per line, for scripting.
func FormatQuietResult(res Result) string {
	lines := make([]string, len(res.Values))
	for i, v := range res.Values {
		lines[i] = v.Hex()
	}
	return strings.Join(lines, "\n")
}

// DisplayQuietResult writes FormatQuietResult followed by a newline.
func DisplayQuietResult(out io.Writer, res Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResultWithConfig displays res according to config and saves it
// when an output file is set.
func DisplayResultWithConfig(out io.Writer, res Result, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, res)
	} else {
		DisplayResult(res, config.Details, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(res, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
