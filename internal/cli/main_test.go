package cli

import (
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/agbru/bigmod/internal/bigint"
	apperrors "github.com/agbru/bigmod/internal/errors"
	"github.com/agbru/bigmod/internal/orchestration"
	"github.com/agbru/bigmod/internal/reference"
	"github.com/agbru/bigmod/internal/ui"
)

// TestMain disables colors so assertions can match plain text.
func TestMain(m *testing.M) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	os.Exit(m.Run())
}

var p4 = bigint.MustNewParams(10, 4)

// sampleResults covers the three row kinds: matching, diverging and failed.
func sampleResults() []orchestration.OperationResult {
	return []orchestration.OperationResult{
		{
			Name:     "add",
			Arity:    "a + b",
			Value:    p4.FromInt(3086),
			Exact:    big.NewInt(3086),
			Duration: 2 * time.Millisecond,
		},
		{
			Name:     "gcd",
			Arity:    "gcd(a, b)",
			Value:    p4.FromInt(4321),
			Exact:    big.NewInt(1),
			Duration: 40 * time.Microsecond,
		},
		{
			Name:     "mod",
			Arity:    "a mod m",
			Err:      apperrors.OperationError{Operation: "mod", Cause: bigint.ErrZeroModulus},
			ExactErr: reference.ErrUndefined,
		},
	}
}

var errBoom = errors.New("boom")
