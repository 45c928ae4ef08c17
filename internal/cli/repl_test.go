package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/bigmod/internal/calc"
	"github.com/agbru/bigmod/internal/logging"
	"github.com/agbru/bigmod/internal/reference"
	"github.com/agbru/bigmod/internal/testutil"
)

func newTestREPL(out *bytes.Buffer) *REPL {
	config := REPLConfig{
		Operands: calc.Operands{A: p4.FromInt(12), B: p4.FromInt(30), M: p4.FromInt(100), Exp: 2},
		Timeout:  time.Second,
	}
	r := NewREPL(calc.NewDefaultRegistry(), reference.BigOracle{}, config)
	r.SetOutput(out)
	r.SetLogger(logging.NewZerologAdapter(zerolog.Nop()))
	return r
}

func TestNewREPL_DefaultTimeout(t *testing.T) {
	t.Parallel()
	r := NewREPL(calc.NewDefaultRegistry(), nil, REPLConfig{Operands: calc.Operands{A: p4.Zero()}})
	if r.config.Timeout != time.Minute {
		t.Errorf("Timeout = %v, want 1m", r.config.Timeout)
	}
	if r.params.Size() != 4 {
		t.Errorf("params taken from operands should have size 4, got %d", r.params.Size())
	}
}

func TestProcessCommand(t *testing.T) {
	var out bytes.Buffer
	r := newTestREPL(&out)
	ctx := context.Background()

	// Steps share the session state and run in order.
	steps := []struct {
		input string
		want  []string
	}{
		{"add", []string{"a + b = 42", "exact: 42"}},
		{"SUB", []string{"a - b = 9982", "exact: 9982"}},
		{"mod", []string{"a mod m: error: zero modulus"}},
		{"set a 5", []string{"a = 5"}},
		{"add", []string{"a + b = 35"}},
		{"set a -1", []string{"a = 9999"}},
		{"set x 1", []string{"Unknown operand: x"}},
		{"set a foo", []string{"Invalid integer: foo"}},
		{"set a", []string{"Usage: set a|b|m <int>"}},
		{"exp 7", []string{"exp = 7"}},
		{"exp -1", []string{"Invalid exponent: -1"}},
		{"status", []string{"base 10, 4 digits", "a:       9999", "exp:     7"}},
		{"ops", []string{"modpow", "a^exp mod m", "gcd(a, b)"}},
		{"verbose", []string{"Full-width values: true"}},
		{"frobnicate", []string{"Unknown command: frobnicate"}},
		{"help", []string{"Available commands:"}},
	}
	for _, step := range steps {
		out.Reset()
		if !r.processCommand(ctx, step.input) {
			t.Fatalf("%q ended the session", step.input)
		}
		output := testutil.StripAnsiCodes(out.String())
		for _, want := range step.want {
			if !strings.Contains(output, want) {
				t.Errorf("%q: output lacks %q:\n%s", step.input, want, output)
			}
		}
	}

	out.Reset()
	if r.processCommand(ctx, "quit") {
		t.Error("quit should end the session")
	}
}

func TestREPL_All(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	r := newTestREPL(&out)
	r.processCommand(context.Background(), "all")

	output := testutil.StripAnsiCodes(out.String())
	for _, want := range []string{"--- Results ---", "a + b", "a^exp mod m", "Global Status: Partial."} {
		if !strings.Contains(output, want) {
			t.Errorf("output lacks %q:\n%s", want, output)
		}
	}
}

func TestREPL_Start(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"exit command", "add\n\nexit\nadd\n", []string{"interactive mode", "a + b = 42", "Goodbye!"}},
		{"eof without newline", "add", []string{"a + b = 42", "Goodbye!"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			r := newTestREPL(&out)
			r.SetInput(strings.NewReader(tt.input))
			r.Start(context.Background())

			output := testutil.StripAnsiCodes(out.String())
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("output lacks %q:\n%s", want, output)
				}
			}
			if strings.Count(output, "a + b = 42") != 1 {
				t.Errorf("commands after exit must not run:\n%s", output)
			}
		})
	}
}

func TestREPL_StartCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	r := newTestREPL(&out)
	r.SetInput(strings.NewReader("add\n"))
	r.Start(ctx)

	if strings.Contains(out.String(), "a + b = 42") {
		t.Errorf("a canceled session must not run commands:\n%s", out.String())
	}
}
