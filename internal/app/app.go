package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agbru/bigmod/internal/calc"
	"github.com/agbru/bigmod/internal/cli"
	"github.com/agbru/bigmod/internal/config"
	apperrors "github.com/agbru/bigmod/internal/errors"
	"github.com/agbru/bigmod/internal/logging"
	"github.com/agbru/bigmod/internal/metrics"
	"github.com/agbru/bigmod/internal/orchestration"
	"github.com/agbru/bigmod/internal/reference"
	"github.com/agbru/bigmod/internal/ui"
)

// Application is a configured bigmod run.
type Application struct {
	Config    config.AppConfig
	Registry  *calc.Registry
	Oracle    reference.Oracle
	ErrWriter io.Writer
	// In feeds the interactive session. It defaults to os.Stdin.
	In io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry replaces the default operation registry.
func WithRegistry(r *calc.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithOracle replaces the exact-arithmetic oracle. A nil oracle disables
// exact values.
func WithOracle(o reference.Oracle) AppOption {
	return func(a *Application) { a.Oracle = o }
}

// New parses args (program name first) and returns a ready Application.
// Flag errors, including -h, are returned as is; see IsHelpError.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, Oracle: reference.Default(), In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = calc.NewDefaultRegistry()
	}

	programName := "bigmod"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if err := logging.Setup(a.ErrWriter, a.Config.LogLevel, a.Config.NoColor); err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	ui.InitTheme(a.Config.NoColor || a.Config.JSONOutput)

	in, err := a.Config.Operands()
	if err != nil {
		return apperrors.HandleOperationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
	}

	if a.Config.Interactive {
		return a.runREPL(ctx, in, out)
	}
	return a.runPlan(ctx, in, out)
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(ctx context.Context, in calc.Operands, out io.Writer) int {
	ctx, lifecycle := SetupLifecycle(ctx, 0)
	defer lifecycle.Cleanup()

	repl := cli.NewREPL(a.Registry, a.Oracle, cli.REPLConfig{
		Operands: in,
		Timeout:  a.Config.Timeout,
		Verbose:  a.Config.Verbose,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

// runPlan evaluates the selected operations concurrently and presents the
// results in the configured format.
func (a *Application) runPlan(ctx context.Context, in calc.Operands, out io.Writer) int {
	logger := logging.NewDefaultLogger("app")

	ops, err := a.Registry.Resolve(a.Config.Ops)
	if err != nil {
		return apperrors.HandleOperationError(apperrors.ConfigError{Message: "invalid operation selection", Cause: err}, 0, a.ErrWriter, cli.CLIColorProvider{})
	}

	ctx, lifecycle := SetupLifecycle(ctx, a.Config.Timeout)
	defer lifecycle.Cleanup()

	plain := a.Config.Quiet || a.Config.JSONOutput
	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if plain {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	} else {
		cli.PrintExecutionConfig(a.Config, in, out)
		cli.PrintExecutionMode(ops, out)
	}

	start := time.Now()
	results := orchestration.ExecutePlan(ctx, ops, in, a.Oracle, reporter, progressOut)
	elapsed := time.Since(start)

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logger.Error("plan interrupted", apperrors.TimeoutError{Operation: "plan", Limit: a.Config.Timeout})
	}

	var code int
	switch {
	case a.Config.JSONOutput:
		if err := cli.WriteJSON(out, results); err != nil {
			logger.Error("json output failed", err)
			return apperrors.ExitErrorGeneric
		}
		code = orchestration.ExitCode(results)
	case a.Config.Quiet:
		cli.DisplayQuietResults(out, results)
		code = orchestration.ExitCode(results)
	default:
		opts := orchestration.PresentationOptions{Verbose: a.Config.Verbose, Details: a.Config.Details}
		code = orchestration.AnalyzeResults(results, opts, cli.CLIResultPresenter{}, out)
	}

	logger.Info("plan finished",
		logging.Int("operations", len(results)),
		logging.Int("exit_code", code),
		logging.Duration("elapsed", elapsed))

	if a.Config.Metrics {
		fmt.Fprintln(out)
		if err := metrics.WriteText(out); err != nil {
			logger.Error("metrics exposition failed", err)
		}
	}
	return code
}

// IsHelpError reports whether err comes from -h or -help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
