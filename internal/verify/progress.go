package verify

import (
	"time"

	"github.com/agbru/chonky/internal/format"
)

// ProgressUpdate reports the completed fraction of one check.
type ProgressUpdate struct {
	CheckIndex int
	Value      float64
}

// ProgressAggregator folds per-check updates into an overall fraction and
// a remaining-time estimate.
type ProgressAggregator struct {
	state     *format.ProgressWithETA
	numChecks int
}

// NewProgressAggregator returns nil when numChecks <= 0.
func NewProgressAggregator(numChecks int) *ProgressAggregator {
	if numChecks <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:     format.NewProgressWithETA(numChecks),
		numChecks: numChecks,
	}
}

// AggregatedProgress is the state after one update.
type AggregatedProgress struct {
	CheckIndex      int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update applies one update.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.CheckIndex, update.Value)
	return AggregatedProgress{
		CheckIndex:      update.CheckIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the overall fraction without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumChecks returns the number of tracked checks.
func (a *ProgressAggregator) NumChecks() int {
	return a.numChecks
}

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
