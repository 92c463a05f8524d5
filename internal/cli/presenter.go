package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	apperrors "github.com/agbru/chonky/internal/errors"
	"github.com/agbru/chonky/internal/format"
	"github.com/agbru/chonky/internal/metrics"
	"github.com/agbru/chonky/internal/sysmon"
	"github.com/agbru/chonky/internal/ui"
	"github.com/agbru/chonky/internal/verify"
)

// CLIProgressReporter implements verify.ProgressReporter with a spinner and
// progress bar.
type CLIProgressReporter struct{}

var _ verify.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan verify.ProgressUpdate, numChecks int, out io.Writer) {
	DisplayProgress(wg, progressChan, numChecks, out)
}

// CLIResultPresenter implements verify.ResultPresenter for terminal output.
type CLIResultPresenter struct{}

var _ verify.ResultPresenter = CLIResultPresenter{}

// PresentCheckTable prints one row per check: name, samples, duration and
// verdict. Padding is computed on the plain text so ANSI codes do not break
// alignment.
func (CLIResultPresenter) PresentCheckTable(results []verify.CheckResult, out io.Writer) {
	styles := ui.CurrentStyles()
	fmt.Fprintf(out, "\n%s\n", styles.Heading.Render("--- Self-check Summary ---"))

	nameW, samplesW, durW := len("Check"), len("Samples"), len("Duration")
	for _, res := range results {
		nameW = max(nameW, len(res.Name))
		samplesW = max(samplesW, len(strconv.Itoa(res.Samples)))
		durW = max(durW, len(checkDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%-*s   %*s   %-*s   %s\n", nameW, "Check", samplesW, "Samples", durW, "Duration", "Status")
	for _, res := range results {
		status := styles.Pass.Render("PASS")
		if res.Err != nil {
			status = styles.Fail.Render(fmt.Sprintf("FAIL (%v, seed %d)", res.Err, res.Seed))
		}
		fmt.Fprintf(out, "%s%-*s%s   %*d   %s%-*s%s   %s\n",
			ui.ColorBlue(), nameW, res.Name, ui.ColorReset(),
			samplesW, res.Samples,
			ui.ColorYellow(), durW, checkDuration(res.Duration), ui.ColorReset(),
			status)
	}
}

func checkDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// HandleError maps err to an exit code and prints the failure.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider supplies the current theme's colors to the error handler.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// DisplayMemoryStats shows what an evaluation allocated.
func DisplayMemoryStats(before, after metrics.MemorySnapshot, out io.Writer) {
	delta := after.Since(before)
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(after.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s in %d objects\n", format.FormatBytes(delta.Bytes), delta.Objects)
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.GCs)
}

// DisplayEnvironment shows the host load and the CPU features relevant to
// limb arithmetic.
func DisplayEnvironment(stats sysmon.Stats, features sysmon.CPUFeatures, out io.Writer) {
	fmt.Fprintf(out, "\nEnvironment:\n")
	fmt.Fprintf(out, "  CPU:             %s%s%s, %d logical, %.1f%% busy\n",
		ui.ColorCyan(), features, ui.ColorReset(), stats.LogicalCPU, stats.CPUPercent)
	fmt.Fprintf(out, "  Memory:          %s free of %s (%.1f%% used)\n",
		format.FormatBytes(stats.MemFree), format.FormatBytes(stats.MemTotal), stats.MemPercent)
	carry := "no"
	if features.HasCarryChain() {
		carry = "yes"
	}
	fmt.Fprintf(out, "  ADX+BMI2 carry:  %s\n", carry)
}
