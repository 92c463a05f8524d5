// Package app wires configuration, the engine, the self-check runner and the
// terminal presentation into the chonky command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/chonky/internal/config"
	"github.com/agbru/chonky/internal/handle"
	"github.com/agbru/chonky/internal/logging"
	"github.com/agbru/chonky/internal/metrics"
	"github.com/agbru/chonky/internal/ui"
	"github.com/agbru/chonky/internal/verify"
)

// Application represents one chonky invocation.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the default stderr logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithRecorder replaces the default metrics recorder.
func WithRecorder(r *metrics.Recorder) AppOption {
	return func(a *Application) { a.Metrics = r }
}

// New creates an Application by parsing args, where args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "chonky")
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewRecorder()
	}

	programName := "chonky"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, handle.OpNames(), verify.OracleNames())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.NoColor)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var code int
	if a.Config.SelfCheck {
		code = a.runSelfCheck(ctx, out)
	} else {
		code = a.runEval(ctx, out)
	}

	if a.Config.Metrics {
		fmt.Fprintln(out)
		if err := a.Metrics.WriteText(out); err != nil {
			a.Logger.Error("writing metrics", err)
		}
	}
	return code
}

// IsHelpError reports whether err comes from -h or --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
