package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxETA caps estimates so that a stalled task does not print absurd values.
const maxETA = 24 * time.Hour

// ProgressState tracks the completion fraction of a fixed number of tasks.
type ProgressState struct {
	progresses []float64
	numTasks   int
}

// NewProgressState creates a tracker for n tasks, all at zero.
func NewProgressState(n int) *ProgressState {
	return &ProgressState{progresses: make([]float64, n), numTasks: n}
}

// Update records the fraction of task i, clamped to [0, 1]. Out-of-range
// indices are ignored.
func (p *ProgressState) Update(i int, fraction float64) {
	if i < 0 || i >= p.numTasks {
		return
	}
	p.progresses[i] = min(max(fraction, 0), 1)
}

// CalculateAverage returns the mean completion over all tasks.
func (p *ProgressState) CalculateAverage() float64 {
	if p.numTasks == 0 {
		return 0
	}
	var sum float64
	for _, v := range p.progresses {
		sum += v
	}
	return sum / float64(p.numTasks)
}

// ProgressWithETA extends ProgressState with a completion-rate estimate.
type ProgressWithETA struct {
	*ProgressState
	mu           sync.Mutex
	startTime    time.Time
	progressRate float64 // average fraction per second
}

// NewProgressWithETA creates a tracker for n tasks starting now.
func NewProgressWithETA(n int) *ProgressWithETA {
	return &ProgressWithETA{ProgressState: NewProgressState(n), startTime: time.Now()}
}

// UpdateWithETA records a task fraction and returns the overall progress and
// the estimated remaining time.
func (p *ProgressWithETA) UpdateWithETA(i int, fraction float64) (float64, time.Duration) {
	p.mu.Lock()
	p.Update(i, fraction)
	avg := p.CalculateAverage()
	if elapsed := time.Since(p.startTime).Seconds(); elapsed > 0 && avg > 0 {
		p.progressRate = avg / elapsed
	}
	p.mu.Unlock()
	return avg, p.GetETA()
}

// GetETA estimates the remaining time from the observed rate.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	return min(eta, maxETA)
}

// ProgressBar draws a bar of length cells for a fraction in [0, 1].
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA combines a bar, a percentage and an ETA.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), min(max(progress, 0), 1)*100, FormatETA(eta))
}
