package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/bigmod/internal/errors"
	"github.com/agbru/bigmod/internal/format"
	"github.com/agbru/bigmod/internal/metrics"
	"github.com/agbru/bigmod/internal/orchestration"
	"github.com/agbru/bigmod/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider using the current
// theme.
type CLIColorProvider struct{}

// Yellow returns the warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset code.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// statusOf classifies a result for the status column.
func statusOf(res orchestration.OperationResult) string {
	switch {
	case res.Err != nil:
		return ui.StatusFailed
	case res.Diverges():
		return ui.StatusDiverges
	default:
		return ui.StatusOK
	}
}

// FormatValue renders an engine value in decimal, truncated unless verbose.
func FormatValue(res orchestration.OperationResult, verbose bool) string {
	if res.Err != nil {
		return "-"
	}
	return shorten(res.Value.Big().String(), verbose)
}

// FormatExact renders the exact value in decimal, "undefined" when exact
// arithmetic has no answer and "-" when no oracle ran or it was cut short by
// the plan deadline.
func FormatExact(res orchestration.OperationResult, verbose bool) string {
	switch {
	case apperrors.IsContextError(res.ExactErr):
		return "-"
	case res.ExactErr != nil:
		return "undefined"
	case res.Exact == nil:
		return "-"
	}
	return shorten(res.Exact.String(), verbose)
}

func shorten(s string, verbose bool) string {
	if verbose {
		return s
	}
	short, _ := format.Truncate(s)
	return short
}

// grouped adds thousand separators to decimal text that fits on screen.
func grouped(s string, verbose bool) string {
	if short, cut := format.Truncate(s); cut && !verbose {
		return short
	}
	return format.FormatNumberString(s)
}

// PresentComparisonTable prints one row per operation: signature, duration,
// engine value, exact value and status. Failures are listed below the table.
// Padding is computed on plain text so that color codes do not break the
// alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.OperationResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Heading("--- Results ---"))

	headers := []string{"Operation", "Duration", "Engine", "Exact"}
	rows := make([][]string, len(results))
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for i, res := range results {
		rows[i] = []string{res.Arity, format.FormatExecutionDuration(res.Duration), FormatValue(res, opts.Verbose), FormatExact(res, opts.Verbose)}
		for j, cell := range rows[i] {
			widths[j] = max(widths[j], len([]rune(cell)))
		}
	}

	for i, h := range headers {
		fmt.Fprintf(out, "%s%s%s%s   ", ui.ColorBold(), h, ui.ColorReset(), padding(h, widths[i]))
	}
	fmt.Fprintf(out, "%sStatus%s\n", ui.ColorBold(), ui.ColorReset())

	colors := []func() string{ui.ColorBlue, ui.ColorYellow, ui.ColorReset, ui.ColorCyan}
	for i, row := range rows {
		for j, cell := range row {
			fmt.Fprintf(out, "%s%s%s%s   ", colors[j](), cell, ui.ColorReset(), padding(cell, widths[j]))
		}
		fmt.Fprintln(out, strings.TrimRight(ui.Badge(statusOf(results[i])), " "))
	}

	var failures []orchestration.OperationResult
	for _, res := range results {
		if res.Err != nil {
			failures = append(failures, res)
		}
	}
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%sFailures:%s\n", ui.ColorRed(), ui.ColorReset())
	for _, res := range failures {
		fmt.Fprintf(out, "  %v\n", res.Err)
	}
}

// padding returns the spaces needed to widen s to width runes.
func padding(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// PresentDetails prints the digit representation of every engine value and
// the process memory summary. It prints nothing unless opts.Details is set.
func (CLIResultPresenter) PresentDetails(results []orchestration.OperationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if !opts.Details {
		return
	}
	fmt.Fprintf(out, "\n%s\n", ui.Heading("--- Details ---"))
	for _, res := range results {
		fmt.Fprintf(out, "%s%s%s\n", ui.ColorBlue(), res.Arity, ui.ColorReset())
		if res.Err != nil {
			fmt.Fprintf(out, "  error:  %s%v%s\n", ui.ColorRed(), causeOf(res.Err), ui.ColorReset())
		} else {
			digits := res.Value.TrimmedString()
			if opts.Verbose {
				digits = res.Value.DigitString()
			}
			fmt.Fprintf(out, "  digits: %s (base %d, %s significant)\n",
				shorten(digits, opts.Verbose), res.Value.Base(), format.Count(uint64(res.Value.Len())))
			fmt.Fprintf(out, "  value:  %s\n", grouped(res.Value.Big().String(), opts.Verbose))
		}
		switch {
		case res.ExactErr != nil:
			fmt.Fprintf(out, "  exact:  undefined (%v)\n", res.ExactErr)
		case res.Exact != nil:
			fmt.Fprintf(out, "  exact:  %s\n", grouped(res.Exact.String(), opts.Verbose))
		}
	}
	snap := metrics.NewMemoryCollector().Snapshot()
	fmt.Fprintf(out, "\nMemory: %s\n", snap.Summary())
}

// HandleError maps a plan failure to an exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleOperationError(err, duration, out, CLIColorProvider{})
}
