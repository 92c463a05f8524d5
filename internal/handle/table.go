package handle

import (
	"errors"
	"fmt"
	"time"

	"github.com/agbru/chonky/internal/bignum"
	"github.com/agbru/chonky/internal/logging"
	"github.com/agbru/chonky/internal/metrics"
)

// Handle is an opaque reference to a Number owned by a Table.
type Handle uint64

// Absent is the absent-result sentinel. No live Number ever has this handle.
const Absent Handle = 0

var (
	// ErrUnknownHandle is returned for Absent, released or never-issued handles.
	ErrUnknownHandle = errors.New("handle: unknown or released handle")
	// ErrUnknownOp is returned by ParseOp and Invoke for unsupported operations.
	ErrUnknownOp = errors.New("handle: unknown operation")
	// ErrArity is returned by Invoke when the operand count does not match the operation.
	ErrArity = errors.New("handle: wrong number of operands")
)

// Table maps live handles to the Numbers they own.
type Table struct {
	next    Handle
	live    map[Handle]*bignum.Number
	last    error
	metrics *metrics.Recorder
	log     logging.Logger
}

// Option configures a Table.
type Option func(*Table)

// WithMetrics records every entry point call in r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(t *Table) { t.metrics = r }
}

// WithLogger sets the logger used to report absent results.
func WithLogger(l logging.Logger) Option {
	return func(t *Table) { t.log = l }
}

// NewTable creates an empty Table.
func NewTable(opts ...Option) *Table {
	t := &Table{
		live: make(map[Handle]*bignum.Number),
		log:  logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Allocate copies data[:length] into a new Number tagged with sign and
// returns its handle, or Absent when the allocation is refused.
func (t *Table) Allocate(data []byte, length int, sign bool) Handle {
	start := time.Now()
	n, err := bignum.New(data, length, sign)
	if err != nil {
		t.fail("allocate", start, err)
		return Absent
	}
	h := t.register(n)
	t.succeed("allocate", start, n.Len())
	return h
}

// Release invalidates h. Releasing an unknown or already released handle
// returns ErrUnknownHandle and leaves the table untouched.
func (t *Table) Release(h Handle) error {
	n, ok := t.live[h]
	if !ok {
		return fmt.Errorf("release %d: %w", h, ErrUnknownHandle)
	}
	delete(t.live, h)
	t.metrics.SetLiveHandles(len(t.live))
	return n.Release()
}

// ReleaseAll releases every live handle.
func (t *Table) ReleaseAll() {
	for h := range t.live {
		_ = t.Release(h)
	}
}

// Live returns the number of live handles.
func (t *Table) Live() int { return len(t.live) }

// Err reports why the most recent entry point returned Absent. It is reset
// by every successful call.
func (t *Table) Err() error { return t.last }

// Magnitude returns a copy of the little-endian magnitude behind h.
func (t *Table) Magnitude(h Handle) ([]byte, error) {
	n, err := t.lookup(h)
	if err != nil {
		return nil, err
	}
	return n.Bytes(), nil
}

// Length returns the magnitude width of h in bytes.
func (t *Table) Length(h Handle) (int, error) {
	n, err := t.lookup(h)
	if err != nil {
		return 0, err
	}
	return n.Len(), nil
}

// Sign returns the sign flag of h; true means negative.
func (t *Table) Sign(h Handle) (bool, error) {
	n, err := t.lookup(h)
	if err != nil {
		return false, err
	}
	return n.Negative(), nil
}

func (t *Table) lookup(h Handle) (*bignum.Number, error) {
	n, ok := t.live[h]
	if !ok {
		return nil, fmt.Errorf("handle %d: %w", h, ErrUnknownHandle)
	}
	return n, nil
}

func (t *Table) register(n *bignum.Number) Handle {
	t.next++
	t.live[t.next] = n
	return t.next
}

func (t *Table) succeed(op string, start time.Time, width int) {
	t.last = nil
	t.metrics.Observe(op, metrics.OutcomeOK, time.Since(start), width)
	t.metrics.SetLiveHandles(len(t.live))
}

func (t *Table) fail(op string, start time.Time, err error) {
	t.last = fmt.Errorf("%s: %w", op, err)
	t.metrics.Observe(op, metrics.OutcomeAbsent, time.Since(start), 0)
	t.log.Debug("absent result", logging.String("op", op), logging.Err(err))
}
