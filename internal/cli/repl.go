package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/bigmod/internal/bigint"
	"github.com/agbru/bigmod/internal/calc"
	"github.com/agbru/bigmod/internal/format"
	"github.com/agbru/bigmod/internal/logging"
	"github.com/agbru/bigmod/internal/orchestration"
	"github.com/agbru/bigmod/internal/reference"
	"github.com/agbru/bigmod/internal/ui"
)

// REPLConfig holds the initial state of an interactive session.
type REPLConfig struct {
	// Operands are the starting values of a, b, m and exp.
	Operands calc.Operands
	// Timeout bounds each command.
	Timeout time.Duration
	// Verbose prints full values instead of truncated ones.
	Verbose bool
}

// REPL is an interactive session over a fixed set of engine parameters.
// Operands can be changed between commands; every operation reads the
// current values.
type REPL struct {
	config   REPLConfig
	registry *calc.Registry
	oracle   reference.Oracle
	params   bigint.Params
	in       io.Reader
	out      io.Writer
	logger   logging.Logger
}

// NewREPL creates a session. The engine parameters are taken from the
// operands; oracle may be nil to skip exact values.
func NewREPL(registry *calc.Registry, oracle reference.Oracle, config REPLConfig) *REPL {
	if config.Timeout <= 0 {
		config.Timeout = time.Minute
	}
	return &REPL{
		config:   config,
		registry: registry,
		oracle:   oracle,
		params:   config.Operands.A.Params(),
		in:       os.Stdin,
		out:      os.Stdout,
		logger:   logging.NewDefaultLogger("repl"),
	}
}

// SetInput sets a custom input reader.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// SetLogger replaces the session logger.
func (r *REPL) SetLogger(l logging.Logger) { r.logger = l }

// Start reads commands until "exit", EOF or cancellation of ctx.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for ctx.Err() == nil {
		fmt.Fprint(r.out, ui.ColorGreen()+"bigmod> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			r.logger.Error("read failed", err)
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(ctx, line) {
				return
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s\n", ui.Heading("bigmod - interactive mode"))
	fmt.Fprintf(r.out, "%s%s%s\n\n", ui.ColorCyan(), r.params, ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, c := range [][2]string{
		{"set a|b|m <int>", "Set an operand (decimal, negatives wrap)"},
		{"exp <n>", "Set the exponent of modpow and rsh"},
		{"<op>", "Run one operation (see ops)"},
		{"all", "Run every operation concurrently"},
		{"ops", "List operations"},
		{"status", "Display the current operands"},
		{"verbose", "Toggle full-width values"},
		{"help", "Display this help"},
		{"exit / quit", "Leave the session"},
	} {
		fmt.Fprintf(r.out, "  %s%-16s%s - %s\n", ui.ColorYellow(), c[0], ui.ColorReset(), c[1])
	}
}

// processCommand executes one command and returns false when the session
// should end.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	r.logger.Debug("command", logging.String("cmd", cmd), logging.Int("args", len(args)))

	switch cmd {
	case "set":
		r.cmdSet(args)
	case "exp":
		r.cmdExp(args)
	case "all":
		r.cmdAll(ctx)
	case "ops", "list", "ls":
		r.cmdOps()
	case "status", "st":
		r.cmdStatus()
	case "verbose", "v":
		r.config.Verbose = !r.config.Verbose
		fmt.Fprintf(r.out, "Full-width values: %s%t%s\n", ui.ColorGreen(), r.config.Verbose, ui.ColorReset())
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if !r.registry.Has(cmd) {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
			return true
		}
		r.runOne(ctx, cmd)
	}
	return true
}

func (r *REPL) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: set a|b|m <int>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, ok := new(big.Int).SetString(args[1], 10)
	if !ok {
		fmt.Fprintf(r.out, "%sInvalid integer: %s%s\n", ui.ColorRed(), args[1], ui.ColorReset())
		return
	}
	x := r.params.FromBig(n)
	switch strings.ToLower(args[0]) {
	case "a":
		r.config.Operands.A = x
	case "b":
		r.config.Operands.B = x
	case "m":
		r.config.Operands.M = x
	default:
		fmt.Fprintf(r.out, "%sUnknown operand: %s (expected a, b or m)%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s = %s%s%s\n", strings.ToLower(args[0]), ui.ColorMagenta(), r.show(x.Big().String()), ui.ColorReset())
}

func (r *REPL) cmdExp(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: exp <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	e, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid exponent: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.Operands.Exp = e
	fmt.Fprintf(r.out, "exp = %s%d%s\n", ui.ColorMagenta(), e, ui.ColorReset())
}

func (r *REPL) cmdOps() {
	fmt.Fprintf(r.out, "\n%sAvailable operations:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.registry.List() {
		op, err := r.registry.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(r.out, "  %s%-10s%s %s\n", ui.ColorYellow(), name, ui.ColorReset(), op.Arity())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStatus() {
	in := r.config.Operands
	fmt.Fprintf(r.out, "\n%sCurrent state:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Engine:  %s%s%s\n", ui.ColorCyan(), r.params, ui.ColorReset())
	fmt.Fprintf(r.out, "  a:       %s%s%s\n", ui.ColorCyan(), r.show(in.A.Big().String()), ui.ColorReset())
	fmt.Fprintf(r.out, "  b:       %s%s%s\n", ui.ColorCyan(), r.show(in.B.Big().String()), ui.ColorReset())
	fmt.Fprintf(r.out, "  m:       %s%s%s\n", ui.ColorCyan(), r.show(in.M.Big().String()), ui.ColorReset())
	fmt.Fprintf(r.out, "  exp:     %s%d%s\n", ui.ColorCyan(), in.Exp, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout: %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintln(r.out)
}

func (r *REPL) show(s string) string {
	return shorten(s, r.config.Verbose)
}

// runOne evaluates a single named operation and prints the engine value next
// to the exact value.
func (r *REPL) runOne(ctx context.Context, name string) {
	op, err := r.registry.Get(name)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	results := orchestration.ExecutePlan(ctx, []calc.Operation{op}, r.config.Operands, r.oracle, orchestration.NullProgressReporter{}, io.Discard)
	res := results[0]
	if res.Err != nil {
		fmt.Fprintf(r.out, "%s%s%s: %serror: %v%s\n", ui.ColorBlue(), res.Arity, ui.ColorReset(), ui.ColorRed(), causeOf(res.Err), ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s%s%s = %s%s%s (%s)\n",
		ui.ColorBlue(), res.Arity, ui.ColorReset(),
		ui.ColorGreen(), FormatValue(res, r.config.Verbose), ui.ColorReset(),
		format.FormatExecutionDuration(res.Duration))
	switch {
	case res.ExactErr != nil:
		fmt.Fprintf(r.out, "  exact: %s\n", FormatExact(res, r.config.Verbose))
	case res.Diverges():
		fmt.Fprintf(r.out, "  exact: %s %s\n", FormatExact(res, r.config.Verbose), ui.Badge(ui.StatusDiverges))
	case res.Exact != nil:
		fmt.Fprintf(r.out, "  exact: %s\n", FormatExact(res, r.config.Verbose))
	}
}

// cmdAll runs the whole plan and prints the results table.
func (r *REPL) cmdAll(ctx context.Context) {
	ops, err := r.registry.Resolve(calc.AllOperations)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	results := orchestration.ExecutePlan(ctx, ops, r.config.Operands, r.oracle, orchestration.NullProgressReporter{}, io.Discard)
	opts := orchestration.PresentationOptions{Verbose: r.config.Verbose}
	orchestration.AnalyzeResults(results, opts, CLIResultPresenter{}, r.out)
	fmt.Fprintln(r.out)
}
