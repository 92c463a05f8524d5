//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package verify

import (
	"io"
	"sync"
	"time"
)

// CheckResult is the outcome of running one Check over all its samples.
type CheckResult struct {
	// Name is the check identifier, for example "division-identity".
	Name string
	// Samples is the number of samples that completed successfully.
	Samples int
	// Seed reproduces the sample sequence of this check.
	Seed int64
	// Duration is the wall time spent in the check.
	Duration time.Duration
	// Err is the first failure, or nil when every sample passed.
	Err error
}

// ProgressReporter displays check progress. DisplayProgress runs in its own
// goroutine until progressChan is closed, then calls wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numChecks int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numChecks int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numChecks int, out io.Writer) {
	f(wg, progressChan, numChecks, out)
}

// NullProgressReporter drains the channel without output, for quiet mode.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders the check table and maps failures to exit codes.
type ResultPresenter interface {
	PresentCheckTable(results []CheckResult, out io.Writer)
	HandleError(err error, duration time.Duration, out io.Writer) int
}
