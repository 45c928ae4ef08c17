package orchestration

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/agbru/bigmod/internal/bigint"
)

// OperationResult is the outcome of one operation of a plan. It serves as the
// shared domain type between orchestration and presentation layers.
type OperationResult struct {
	// Name is the registry name of the operation (e.g., "gcd").
	Name string
	// Arity is the human signature of the operation (e.g., "gcd(a, b)").
	Arity string
	// Value is the engine result. It is the zero BigInt if Err is set.
	Value bigint.BigInt
	// Exact is the mathematically exact result, or nil if ExactErr is set or
	// no oracle was used.
	Exact *big.Int
	// Duration is the time the engine took.
	Duration time.Duration
	// Err is the engine failure, wrapped in an apperrors.OperationError.
	Err error
	// ExactErr reports why no exact value exists.
	ExactErr error
}

// Diverges reports whether both results exist and differ.
func (r OperationResult) Diverges() bool {
	return r.Err == nil && r.Exact != nil && r.Value.Big().Cmp(r.Exact) != 0
}

// ProgressUpdate signals that the operation at Index finished.
type ProgressUpdate struct {
	Index int
	Name  string
	Err   error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// Verbose prints full-width digit strings instead of trimmed values.
	Verbose bool
	// Details adds the exact values block and a memory summary.
	Details bool
}

// ProgressReporter displays plan progress. It runs in its own goroutine until
// progressChan is closed and must call wg.Done before returning.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numOperations int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numOperations int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numOperations int, out io.Writer) {
	f(wg, progressChan, numOperations, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet and JSON modes.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ErrorHandler turns a plan failure into a message and an exit code.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// ResultPresenter renders plan results. Implementations decide the format
// (table, quiet lines, JSON) without the orchestration logic changing.
type ResultPresenter interface {
	ErrorHandler

	// PresentComparisonTable displays one row per operation.
	PresentComparisonTable(results []OperationResult, opts PresentationOptions, out io.Writer)

	// PresentDetails displays the extra information requested by opts,
	// such as exact values.
	PresentDetails(results []OperationResult, opts PresentationOptions, out io.Writer)
}
