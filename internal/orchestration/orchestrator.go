package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/bigmod/internal/calc"
	apperrors "github.com/agbru/bigmod/internal/errors"
	"github.com/agbru/bigmod/internal/reference"
)

// ExecutePlan runs every operation of a plan concurrently against the same
// operands.
//
// Each goroutine computes the engine result and, when oracle is non-nil, the
// exact result. Results are returned in plan order regardless of completion
// order; a failing operation never cancels its siblings. Completions are sent
// to the progress reporter, which runs until all operations have finished.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - ops: The operations to run, in plan order.
//   - in: The shared operands.
//   - oracle: The exact-arithmetic oracle, or nil to skip exact values.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []OperationResult: One result per operation, in plan order.
func ExecutePlan(ctx context.Context, ops []calc.Operation, in calc.Operands, oracle reference.Oracle, reporter ProgressReporter, out io.Writer) []OperationResult {
	var g errgroup.Group
	results := make([]OperationResult, len(ops))
	progressChan := make(chan ProgressUpdate, len(ops))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(ops), out)

	for i, op := range ops {
		idx, op := i, op
		g.Go(func() error {
			start := time.Now()
			value, err := op.Apply(ctx, in)
			res := OperationResult{
				Name:     op.Name(),
				Arity:    op.Arity(),
				Value:    value,
				Duration: time.Since(start),
			}
			if err != nil {
				res.Err = apperrors.OperationError{Operation: op.Name(), Cause: err}
			}
			if oracle != nil {
				res.Exact, res.ExactErr = evaluateExact(ctx, oracle, op.Name(), in)
			}
			results[idx] = res
			progressChan <- ProgressUpdate{Index: idx, Name: res.Name, Err: res.Err}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// evaluateExact runs the oracle for one operation but stops waiting when ctx
// ends, returning ctx.Err(). An abandoned evaluation finishes in the
// background and its result is dropped.
func evaluateExact(ctx context.Context, oracle reference.Oracle, name string, in calc.Operands) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	type exact struct {
		value *big.Int
		err   error
	}
	done := make(chan exact, 1)
	go func() {
		v, err := oracle.Evaluate(name, in.A.Big(), in.B.Big(), in.M.Big(), in.Exp, in.A.Params())
		done <- exact{v, err}
	}()
	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// AnalyzeResults presents the results of a plan and derives the exit code.
//
// Divergences from exact arithmetic are reported but are not failures: they
// are the documented behaviour of the digit-local reductions. The plan
// succeeds when every operation produced a value, is partial when some
// failed, and otherwise maps the first failure through the presenter's
// error handler.
//
// Parameters:
//   - results: The results returned by ExecutePlan.
//   - opts: The presentation options.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeResults(results []OperationResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	successCount, divergent, firstError := summarize(results)

	presenter.PresentComparisonTable(results, opts, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No operation produced a value.\n")
		if firstError == nil {
			firstError = errors.New("empty plan")
		}
		return presenter.HandleError(firstError, 0, out)
	}

	presenter.PresentDetails(results, opts, out)

	if divergent > 0 {
		fmt.Fprintf(out, "\nNote: %d of %d engine results differ from exact arithmetic.\n", divergent, successCount)
	}
	if failed := len(results) - successCount; failed > 0 {
		fmt.Fprintf(out, "\nGlobal Status: Partial. %d of %d operations failed.\n", failed, len(results))
		return apperrors.ExitErrorPartial
	}
	fmt.Fprintf(out, "\nGlobal Status: Success. All %d operations produced a value.\n", len(results))
	return apperrors.ExitSuccess
}

// summarize counts the operations that produced a value and, among them, the
// ones that differ from exact arithmetic. firstError is the first failure in
// plan order.
func summarize(results []OperationResult) (successCount, divergent int, firstError error) {
	for _, res := range results {
		if res.Err != nil {
			if firstError == nil {
				firstError = res.Err
			}
			continue
		}
		successCount++
		if res.Diverges() {
			divergent++
		}
	}
	return successCount, divergent, firstError
}

// ExitCode derives the exit code of a plan without presenting it, for the
// quiet and JSON outputs. It follows the same rules as AnalyzeResults.
func ExitCode(results []OperationResult) int {
	successCount, _, firstError := summarize(results)
	switch {
	case successCount == len(results) && successCount > 0:
		return apperrors.ExitSuccess
	case successCount > 0:
		return apperrors.ExitErrorPartial
	case firstError == nil:
		return apperrors.ExitErrorGeneric
	}
	return apperrors.HandleOperationError(firstError, 0, io.Discard, nil)
}
