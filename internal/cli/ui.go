package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigmod/internal/orchestration"
)

const (
	// ProgressRefreshRate is the spinner redraw interval.
	ProgressRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 26
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts briandowns/spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop() { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[14], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState counts finished operations of a plan.
type ProgressState struct {
	total  int
	done   int
	failed int
	last   string
}

// NewProgressState creates a state for a plan of total operations.
func NewProgressState(total int) *ProgressState {
	return &ProgressState{total: total}
}

// Record registers a finished operation.
func (ps *ProgressState) Record(u orchestration.ProgressUpdate) {
	if ps.done >= ps.total {
		return
	}
	ps.done++
	if u.Err != nil {
		ps.failed++
	}
	ps.last = u.Name
}

// Fraction returns the completed share of the plan in [0, 1].
func (ps *ProgressState) Fraction() float64 {
	if ps.total == 0 {
		return 0
	}
	return float64(ps.done) / float64(ps.total)
}

// Suffix renders the spinner text, e.g. " 4/13 [███░░] gcd".
func (ps *ProgressState) Suffix() string {
	s := fmt.Sprintf(" %d/%d [%s]", ps.done, ps.total, progressBar(ps.Fraction(), ProgressBarWidth))
	if ps.failed > 0 {
		s += fmt.Sprintf(" %d failed", ps.failed)
	}
	if ps.last != "" {
		s += " " + ps.last
	}
	return s
}

// progressBar renders a textual bar of the given width.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	return strings.Repeat("█", count) + strings.Repeat("░", length-count)
}

// DisplayProgress shows a spinner with a completion counter until
// progressChan is closed, then prints a final summary line. It always calls
// wg.Done.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numOperations int, out io.Writer) {
	defer wg.Done()
	if numOperations <= 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressState(numOperations)
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(state.Suffix())
	s.Start()

	for update := range progressChan {
		state.Record(update)
		s.UpdateSuffix(state.Suffix())
	}
	s.Stop()
	fmt.Fprintf(out, "Evaluated %d operations [%s]\n", state.done, progressBar(state.Fraction(), ProgressBarWidth))
}

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to the package-level DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numOperations int, out io.Writer) {
	DisplayProgress(wg, progressChan, numOperations, out)
}
