package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/chonky/internal/cli"
	apperrors "github.com/agbru/chonky/internal/errors"
	"github.com/agbru/chonky/internal/handle"
	"github.com/agbru/chonky/internal/logging"
	"github.com/agbru/chonky/internal/metrics"
	"github.com/agbru/chonky/internal/sysmon"
)

// operand is a parsed command-line operand.
type operand struct {
	flag string
	mag  []byte
	neg  bool
}

// parseOperands reads the operands op needs from -a, -b and -m.
func (a *Application) parseOperands(op handle.Op) ([]operand, error) {
	sources := []struct{ flag, value string }{{"a", a.Config.A}, {"b", a.Config.B}, {"m", a.Config.M}}
	operands := make([]operand, 0, op.Arity())
	for _, src := range sources[:op.Arity()] {
		if src.value == "" {
			return nil, apperrors.ValidationError{Field: "-" + src.flag, Message: "required by " + op.String()}
		}
		mag, neg, err := cli.ParseOperand(src.value)
		if err != nil {
			return nil, apperrors.ValidationError{Field: "-" + src.flag, Message: err.Error()}
		}
		operands = append(operands, operand{flag: src.flag, mag: mag, neg: neg})
	}
	return operands, nil
}

// estimateBytes bounds the result width of op, for the memory pre-check.
func estimateBytes(op handle.Op, operands []operand) uint64 {
	var widest uint64
	for _, o := range operands {
		widest = max(widest, uint64(len(o.mag)))
	}
	switch op {
	case handle.OpMultiply:
		return uint64(len(operands[0].mag) + len(operands[1].mag))
	case handle.OpPower:
		exp := operands[1].mag
		if len(exp) > 8 {
			for _, b := range exp[8:] {
				if b != 0 {
					return ^uint64(0)
				}
			}
		}
		var e uint64
		for i := min(len(exp), 8) - 1; i >= 0; i-- {
			e = e<<8 | uint64(exp[i])
		}
		base := cli.Value{Magnitude: operands[0].mag}.BitLen()
		if e == 0 || base <= 1 {
			return 1
		}
		if e > ^uint64(0)/uint64(base) {
			return ^uint64(0)
		}
		return uint64(base)*e/8 + 1
	}
	return widest + 1
}

// runEval evaluates the configured operation once through a handle table.
func (a *Application) runEval(ctx context.Context, out io.Writer) int {
	op, err := handle.ParseOp(a.Config.Op)
	if err != nil {
		return apperrors.HandleCalculationError(apperrors.NewConfigError("%v", err), 0, out, cli.CLIColorProvider{})
	}
	operands, err := a.parseOperands(op)
	if err != nil {
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}

	stats := sysmon.Sample()
	if need := estimateBytes(op, operands); !stats.Fits(need) {
		return apperrors.HandleCalculationError(apperrors.MemoryError{Requested: need, Limit: stats.MemFree}, 0, out, cli.CLIColorProvider{})
	}

	ctx, span := otel.Tracer("app").Start(ctx, "Eval", trace.WithAttributes(attribute.String("op", op.String())))
	defer span.End()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	tbl := handle.NewTable(handle.WithMetrics(a.Metrics), handle.WithLogger(a.Logger))
	args := make([]handle.Handle, len(operands))
	for i, o := range operands {
		if args[i] = tbl.Allocate(o.mag, len(o.mag), o.neg); args[i] == handle.Absent {
			tbl.ReleaseAll()
			return apperrors.HandleCalculationError(apperrors.WrapError(tbl.Err(), "operand -%s", o.flag), 0, out, cli.CLIColorProvider{})
		}
	}

	before := metrics.ReadMemory()
	start := time.Now()
	done := make(chan []handle.Handle, 1)
	go func() { done <- tbl.Invoke(op, args...) }()

	var hs []handle.Handle
	select {
	case hs = <-done:
	case <-ctx.Done():
		// The engine call cannot be interrupted; the table is abandoned to it.
		span.SetStatus(codes.Error, ctx.Err().Error())
		err := ctx.Err()
		if ctx.Err() == context.DeadlineExceeded {
			err = apperrors.TimeoutError{Operation: op.String(), Limit: a.Config.Timeout}
		}
		return apperrors.HandleCalculationError(err, time.Since(start), out, cli.CLIColorProvider{})
	}
	elapsed := time.Since(start)
	after := metrics.ReadMemory()
	defer tbl.ReleaseAll()

	if hs == nil {
		// tbl.Err already names the operation.
		err := apperrors.CalculationError{Cause: tbl.Err()}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}

	res, err := readResult(tbl, op, hs, elapsed)
	if err != nil {
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}
	a.Logger.Info("evaluated",
		logging.String("op", op.String()),
		logging.Int("width", len(res.Values[0].Magnitude)),
		logging.Float64("seconds", elapsed.Seconds()))

	outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: a.Config.Quiet, Details: a.Config.Details}
	if err := cli.DisplayResultWithConfig(out, res, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if a.Config.Details && !a.Config.Quiet {
		cli.DisplayMemoryStats(before, after, out)
		cli.DisplayEnvironment(stats, sysmon.DetectCPUFeatures(), out)
	}
	return apperrors.ExitSuccess
}

// readResult copies the result handles into a displayable Result.
func readResult(tbl *handle.Table, op handle.Op, hs []handle.Handle, elapsed time.Duration) (cli.Result, error) {
	labels := []string{"result"}
	if op == handle.OpDivide {
		labels = []string{"quotient", "remainder"}
	}
	res := cli.Result{Op: op.String(), Duration: elapsed}
	for i, h := range hs {
		mag, err := tbl.Magnitude(h)
		if err != nil {
			return cli.Result{}, err
		}
		neg, err := tbl.Sign(h)
		if err != nil {
			return cli.Result{}, err
		}
		res.Values = append(res.Values, cli.Value{Label: labels[i], Magnitude: mag, Negative: neg})
	}
	return res, nil
}
