package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/chonky/internal/cli"
	apperrors "github.com/agbru/chonky/internal/errors"
	"github.com/agbru/chonky/internal/logging"
	"github.com/agbru/chonky/internal/verify"
)

// runSelfCheck runs the randomized property checks against the configured oracle.
func (a *Application) runSelfCheck(ctx context.Context, out io.Writer) int {
	oracle, err := verify.NewOracle(a.Config.Oracle)
	if err != nil {
		return apperrors.HandleCalculationError(apperrors.NewConfigError("%v", err), 0, out, cli.CLIColorProvider{})
	}
	if a.Config.Seed == 0 {
		a.Config.Seed = time.Now().UnixNano()
	}
	checks := verify.DefaultChecks(oracle)

	var reporter verify.ProgressReporter = cli.CLIProgressReporter{}
	progressOut, tableOut := out, out
	if a.Config.Quiet {
		reporter = verify.NullProgressReporter{}
		progressOut, tableOut = io.Discard, io.Discard
	} else {
		cli.PrintSelfCheckConfig(a.Config, len(checks), oracle.Name(), out)
	}

	opts := verify.Options{
		Samples: a.Config.Samples,
		Bits:    a.Config.Bits,
		Seed:    a.Config.Seed,
		Workers: a.Config.Workers,
	}
	start := time.Now()
	results := verify.ExecuteChecks(ctx, checks, opts, reporter, progressOut)
	code := verify.AnalyzeResults(results, cli.CLIResultPresenter{}, tableOut)

	if a.Config.Quiet {
		if code == apperrors.ExitSuccess {
			fmt.Fprintln(out, "ok")
		} else {
			fmt.Fprintf(out, "fail (seed %d)\n", a.Config.Seed)
		}
	}
	a.Logger.Info("self-check finished",
		logging.Int("checks", len(checks)),
		logging.Int("exit_code", code),
		logging.Float64("seconds", time.Since(start).Seconds()),
		logging.Int64("seed", a.Config.Seed))
	return code
}
