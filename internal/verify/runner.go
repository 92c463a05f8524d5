package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/chonky/internal/errors"
)

// ProgressBufferMultiplier sizes the progress channel per check so that
// workers rarely block on a slow display.
const ProgressBufferMultiplier = 5

// progressSteps bounds the number of progress updates a single check sends.
const progressSteps = 50

// Options controls a self-check run.
type Options struct {
	// Samples is the number of samples drawn per check.
	Samples int
	// Bits is the maximum operand size.
	Bits int
	// Seed is the base seed; check i uses Seed + i.
	Seed int64
	// Workers bounds concurrent checks. Zero means GOMAXPROCS.
	Workers int
}

// ExecuteChecks runs every check concurrently and returns one result per
// check, in input order. Cancellation of ctx stops each check at the next
// sample boundary and is reported as that check's error.
func ExecuteChecks(ctx context.Context, checks []Check, opts Options, reporter ProgressReporter, out io.Writer) []CheckResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)

	results := make([]CheckResult, len(checks))
	progressChan := make(chan ProgressUpdate, len(checks)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(checks), out)

	tracer := otel.Tracer("verify")
	for i, c := range checks {
		i, c := i, c
		g.Go(func() error {
			seed := opts.Seed + int64(i)
			spanCtx, span := tracer.Start(ctx, "Check", trace.WithAttributes(
				attribute.String("check", c.Name()),
				attribute.Int64("seed", seed),
			))
			defer span.End()

			start := time.Now()
			n, err := runCheck(spanCtx, c, seed, opts, i, progressChan)
			results[i] = CheckResult{Name: c.Name(), Samples: n, Seed: seed, Duration: time.Since(start), Err: err}
			span.SetAttributes(attribute.Int("samples", n))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runCheck(ctx context.Context, c Check, seed int64, opts Options, index int, progressChan chan<- ProgressUpdate) (int, error) {
	rng := rand.New(rand.NewSource(seed))
	step := max(1, opts.Samples/progressSteps)
	for s := 0; s < opts.Samples; s++ {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		if err := runSample(c, rng, opts.Bits); err != nil {
			return s, fmt.Errorf("sample %d: %w", s, err)
		}
		if (s+1)%step == 0 || s+1 == opts.Samples {
			progressChan <- ProgressUpdate{CheckIndex: index, Value: float64(s+1) / float64(opts.Samples)}
		}
	}
	return opts.Samples, nil
}

// runSample turns a panic inside the engine into a property violation.
func runSample(c Check, rng *rand.Rand, bits int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = violated("panic: %v", r)
		}
	}()
	return c.Run(rng, bits)
}

// AnalyzeResults presents the check table and returns the exit code of the
// run. A violated property wins over any other failure.
func AnalyzeResults(results []CheckResult, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Name < results[j].Name
	})

	var firstErr error
	violations, samples := 0, 0
	for _, res := range results {
		samples += res.Samples
		if res.Err == nil {
			continue
		}
		if firstErr == nil {
			firstErr = res.Err
		}
		if errors.Is(res.Err, ErrPropertyViolated) {
			violations++
		}
	}

	presenter.PresentCheckTable(results, out)

	switch {
	case violations > 0:
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %d of %d properties were violated.\n", violations, len(results))
		return apperrors.ExitErrorMismatch
	case firstErr != nil:
		fmt.Fprintf(out, "\nGlobal Status: Failure. Not every check could complete.\n")
		return presenter.HandleError(firstErr, 0, out)
	}
	fmt.Fprintf(out, "\nGlobal Status: Success. %d properties held over %d samples.\n", len(results), samples)
	return apperrors.ExitSuccess
}
