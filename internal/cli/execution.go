package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/chonky/internal/config"
	"github.com/agbru/chonky/internal/ui"
)

// PrintExecutionConfig describes the evaluation about to run.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Op, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// PrintSelfCheckConfig describes the self-check run about to start.
func PrintSelfCheckConfig(cfg config.AppConfig, numChecks int, oracle string, out io.Writer) {
	fmt.Fprintf(out, "--- Self-check Configuration ---\n")
	fmt.Fprintf(out, "Running %s%d%s properties x %s%d%s samples of up to %s%d%s bits (seed %d).\n",
		ui.ColorMagenta(), numChecks, ui.ColorReset(),
		ui.ColorMagenta(), cfg.Samples, ui.ColorReset(),
		ui.ColorCyan(), cfg.Bits, ui.ColorReset(), cfg.Seed)
	fmt.Fprintf(out, "Reference oracle: %s%s%s. Timeout: %s%s%s.\n",
		ui.ColorGreen(), oracle, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
