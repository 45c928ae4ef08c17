package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigmod/internal/calc"
	"github.com/agbru/bigmod/internal/config"
	"github.com/agbru/bigmod/internal/format"
	"github.com/agbru/bigmod/internal/ui"
)

// PrintExecutionConfig displays the engine parameters, the operands and the
// timeout before a plan runs.
func PrintExecutionConfig(cfg config.AppConfig, in calc.Operands, out io.Writer) {
	fmt.Fprintf(out, "%s\n", ui.Heading("--- Execution Configuration ---"))
	fmt.Fprintf(out, "Engine: base %s%d%s, %s%s%s digits, timeout %s%s%s.\n",
		ui.ColorCyan(), cfg.Base, ui.ColorReset(),
		ui.ColorCyan(), format.Count(uint64(cfg.Size)), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	for _, op := range []struct {
		name  string
		value string
	}{
		{"a", in.A.Big().String()},
		{"b", in.B.Big().String()},
		{"m", in.M.Big().String()},
	} {
		short, _ := format.Truncate(op.value)
		fmt.Fprintf(out, "  %s = %s%s%s\n", op.name, ui.ColorMagenta(), short, ui.ColorReset())
	}
	fmt.Fprintf(out, "  exp = %s%d%s\n", ui.ColorMagenta(), in.Exp, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays whether a single operation or a whole plan is
// about to run.
func PrintExecutionMode(ops []calc.Operation, out io.Writer) {
	var modeDesc string
	if len(ops) == 1 {
		modeDesc = fmt.Sprintf("Single operation %s%s%s", ui.ColorGreen(), ops[0].Arity(), ui.ColorReset())
	} else {
		modeDesc = fmt.Sprintf("Concurrent plan of %s%d%s operations", ui.ColorGreen(), len(ops), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n%s\n", ui.Heading("--- Starting Execution ---"))
}
