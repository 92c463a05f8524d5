package verify_test

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/chonky/internal/bignum"
	apperrors "github.com/agbru/chonky/internal/errors"
	"github.com/agbru/chonky/internal/verify"
	"github.com/agbru/chonky/internal/verify/mocks"
)

func passing(name string) verify.Check {
	return verify.NewCheck(name, func(*rand.Rand, int) error { return nil })
}

func failingAt(name string, sample int, err error) verify.Check {
	n := 0
	return verify.NewCheck(name, func(*rand.Rand, int) error {
		if n == sample {
			return err
		}
		n++
		return nil
	})
}

func TestExecuteChecks(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	checks := []verify.Check{passing("a"), failingAt("b", 3, boom), passing("c")}
	opts := verify.Options{Samples: 10, Bits: 64, Seed: 100, Workers: 2}

	results := verify.ExecuteChecks(context.Background(), checks, opts, verify.NullProgressReporter{}, io.Discard)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []string{"a", "b", "c"} {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, want)
		}
		if results[i].Seed != 100+int64(i) {
			t.Errorf("results[%d].Seed = %d", i, results[i].Seed)
		}
	}
	if results[0].Err != nil || results[0].Samples != 10 {
		t.Errorf("a: %+v", results[0])
	}
	if !errors.Is(results[1].Err, boom) || results[1].Samples != 3 {
		t.Errorf("b: %+v", results[1])
	}
}

func TestExecuteChecksCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := verify.ExecuteChecks(ctx, []verify.Check{passing("a")}, verify.Options{Samples: 5, Bits: 8}, verify.NullProgressReporter{}, io.Discard)
	if !errors.Is(results[0].Err, context.Canceled) || results[0].Samples != 0 {
		t.Errorf("result = %+v, want canceled with no samples", results[0])
	}
}

func TestExecuteChecksProgress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockProgressReporter(ctrl)

	var mu sync.Mutex
	last := make(map[int]float64)
	reporter.EXPECT().
		DisplayProgress(gomock.Any(), gomock.Any(), 2, gomock.Any()).
		Do(func(wg *sync.WaitGroup, ch <-chan verify.ProgressUpdate, _ int, _ io.Writer) {
			defer wg.Done()
			for u := range ch {
				mu.Lock()
				last[u.CheckIndex] = u.Value
				mu.Unlock()
			}
		})

	verify.ExecuteChecks(context.Background(), []verify.Check{passing("a"), passing("b")},
		verify.Options{Samples: 120, Bits: 8}, reporter, io.Discard)

	for i := 0; i < 2; i++ {
		if last[i] != 1 {
			t.Errorf("check %d final progress = %v, want 1", i, last[i])
		}
	}
}

func TestAnalyzeResults(t *testing.T) {
	t.Parallel()
	violation := errors.Join(verify.ErrPropertyViolated, errors.New("q*b + r != a"))
	tests := []struct {
		name        string
		results     []verify.CheckResult
		handleCalls int
		want        int
	}{
		{
			name:    "all pass",
			results: []verify.CheckResult{{Name: "a", Samples: 5}, {Name: "b", Samples: 5}},
			want:    apperrors.ExitSuccess,
		},
		{
			name: "violation",
			results: []verify.CheckResult{
				{Name: "a", Samples: 5},
				{Name: "b", Err: violation},
				{Name: "c", Err: context.DeadlineExceeded},
			},
			want: apperrors.ExitErrorMismatch,
		},
		{
			name: "engine error",
			results: []verify.CheckResult{
				{Name: "a", Samples: 5},
				{Name: "b", Err: bignum.ErrResourceExhausted},
			},
			handleCalls: 1,
			want:        apperrors.ExitErrorResource,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			presenter := mocks.NewMockResultPresenter(ctrl)
			presenter.EXPECT().PresentCheckTable(gomock.Any(), gomock.Any()).Times(1)
			presenter.EXPECT().HandleError(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(apperrors.ExitErrorResource).Times(tt.handleCalls)

			if got := verify.AnalyzeResults(tt.results, presenter, io.Discard); got != tt.want {
				t.Errorf("AnalyzeResults() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnalyzeResultsSortsPassesFirst(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockResultPresenter(ctrl)
	presenter.EXPECT().PresentCheckTable(gomock.Any(), gomock.Any())
	presenter.EXPECT().HandleError(gomock.Any(), gomock.Any(), gomock.Any()).Return(apperrors.ExitErrorGeneric)

	results := []verify.CheckResult{{Name: "z", Err: errors.New("x")}, {Name: "b"}, {Name: "a"}}
	verify.AnalyzeResults(results, presenter, io.Discard)
	if results[0].Name != "a" || results[1].Name != "b" || results[2].Name != "z" {
		t.Errorf("order = %s %s %s", results[0].Name, results[1].Name, results[2].Name)
	}
}

func TestProgressAggregator(t *testing.T) {
	t.Parallel()
	if verify.NewProgressAggregator(0) != nil {
		t.Error("NewProgressAggregator(0) should be nil")
	}
	agg := verify.NewProgressAggregator(2)
	got := agg.Update(verify.ProgressUpdate{CheckIndex: 1, Value: 1})
	if got.AverageProgress != 0.5 || agg.CalculateAverage() != 0.5 {
		t.Errorf("average = %v, want 0.5", got.AverageProgress)
	}
	if agg.NumChecks() != 2 {
		t.Errorf("NumChecks() = %d", agg.NumChecks())
	}
}
