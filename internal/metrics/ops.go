package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Outcome labels for operation counters.
const (
	OutcomeOK     = "ok"
	OutcomeAbsent = "absent"
)

// Recorder collects per-operation counters and latencies in its own registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry    *prometheus.Registry
	operations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	resultBytes *prometheus.HistogramVec
	liveHandles prometheus.Gauge
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chonky_operations_total",
			Help: "Number of engine operations by outcome.",
		}, []string{"op", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chonky_operation_duration_seconds",
			Help:    "Engine operation latency.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"op"}),
		resultBytes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chonky_result_bytes",
			Help:    "Magnitude width of successful results.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"op"}),
		liveHandles: factory.NewGauge(prometheus.GaugeOpts{
			Name: "chonky_live_handles",
			Help: "Handles currently registered in the table.",
		}),
	}
}

// Observe records one operation. width is the result magnitude width and is
// ignored for absent results.
func (r *Recorder) Observe(op, outcome string, elapsed time.Duration, width int) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(op, outcome).Inc()
	r.duration.WithLabelValues(op).Observe(elapsed.Seconds())
	if outcome == OutcomeOK {
		r.resultBytes.WithLabelValues(op).Observe(float64(width))
	}
}

// SetLiveHandles publishes the current number of live handles.
func (r *Recorder) SetLiveHandles(n int) {
	if r == nil {
		return
	}
	r.liveHandles.Set(float64(n))
}

// Registry exposes the underlying registry, for example to serve it over HTTP.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes every collected family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
