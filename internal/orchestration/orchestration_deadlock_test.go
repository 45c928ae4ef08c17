package orchestration

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/agbru/bigmod/internal/bigint"
	"github.com/agbru/bigmod/internal/calc"
	"github.com/agbru/bigmod/internal/reference"
)

func behaviour(kind string, delay time.Duration) func(ctx context.Context, in calc.Operands) (bigint.BigInt, error) {
	return func(ctx context.Context, in calc.Operands) (bigint.BigInt, error) {
		switch kind {
		case "slow":
			select {
			case <-ctx.Done():
				return bigint.BigInt{}, ctx.Err()
			case <-time.After(delay):
			}
		case "error":
			return bigint.BigInt{}, errors.New("simulated error")
		}
		return in.A, nil
	}
}

// TestOrchestrationNoDeadlock_MixedBehaviors verifies that ExecutePlan
// completes without deadlocking under various operation behaviors.
func TestOrchestrationNoDeadlock_MixedBehaviors(t *testing.T) {
	testCases := []struct {
		name string
		ops  []calc.Operation
	}{
		{"all_instant", []calc.Operation{
			funcOp{"c1", behaviour("instant", 0)},
			funcOp{"c2", behaviour("instant", 0)},
			funcOp{"c3", behaviour("instant", 0)},
		}},
		{"mixed_instant_and_slow", []calc.Operation{
			funcOp{"fast", behaviour("instant", 0)},
			funcOp{"slow", behaviour("slow", 10*time.Millisecond)},
		}},
		{"mixed_with_errors", []calc.Operation{
			funcOp{"ok", behaviour("instant", 0)},
			funcOp{"err", behaviour("error", 0)},
		}},
		{"many", func() []calc.Operation {
			ops := make([]calc.Operation, 200)
			for i := range ops {
				ops[i] = funcOp{"op", behaviour("instant", 0)}
			}
			return ops
		}()},
		{"empty", nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			done := make(chan []OperationResult)
			go func() {
				done <- ExecutePlan(ctx, tc.ops, smallOperands(), reference.BigOracle{}, NullProgressReporter{}, io.Discard)
			}()

			select {
			case results := <-done:
				if len(results) != len(tc.ops) {
					t.Errorf("got %d results, want %d", len(results), len(tc.ops))
				}
			case <-time.After(10 * time.Second):
				t.Fatal("DEADLOCK: ExecutePlan did not complete within timeout")
			}
		})
	}
}

// TestOrchestrationNoDeadlock_ContextCancellation verifies that cancelling
// the context during execution does not cause a deadlock and that canceled
// operations report the context error.
func TestOrchestrationNoDeadlock_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ops := []calc.Operation{
		funcOp{"slow1", behaviour("slow", time.Minute)},
		funcOp{"slow2", behaviour("slow", time.Minute)},
	}

	done := make(chan []OperationResult)
	go func() {
		done <- ExecutePlan(ctx, ops, smallOperands(), reference.BigOracle{}, NullProgressReporter{}, io.Discard)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case results := <-done:
		for _, r := range results {
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("%s: error = %v, want context.Canceled", r.Name, r.Err)
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("DEADLOCK after context cancellation")
	}
}
