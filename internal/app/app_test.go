package app

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agbru/bigmod/internal/calc"
	"github.com/agbru/bigmod/internal/cli"
	apperrors "github.com/agbru/bigmod/internal/errors"
	"github.com/agbru/bigmod/internal/ui"
)

// Run sets the global logger and theme, so these tests do not run in
// parallel and restore both afterwards.
func restoreGlobals(t *testing.T) {
	t.Helper()
	prevLogger, prevLevel, prevTheme := log.Logger, zerolog.GlobalLevel(), ui.GetCurrentTheme()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
		ui.SetCurrentTheme(prevTheme)
	})
}

// smallArgs selects a four-digit decimal engine with a=12, b=30 and a
// modulus without zero digits.
func smallArgs(extra ...string) []string {
	args := []string{"bigmod", "-base", "10", "-size", "4", "-a", "12", "-b", "30", "-m", "1111", "-no-color", "-log-level", "disabled"}
	return append(args, extra...)
}

func run(t *testing.T, args []string) (code int, stdout, stderr string) {
	t.Helper()
	restoreGlobals(t)
	var out, errOut bytes.Buffer
	application, err := New(args, &errOut)
	if err != nil {
		t.Fatalf("New(%v) returned error: %v\n%s", args, err, errOut.String())
	}
	code = application.Run(context.Background(), &out)
	return code, out.String(), errOut.String()
}

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		application, err := New([]string{"bigmod"}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if application.Registry == nil || application.Oracle == nil {
			t.Fatal("Expected a default registry and oracle")
		}
		if application.Config.Ops != calc.AllOperations {
			t.Errorf("Ops = %q, want %q", application.Config.Ops, calc.AllOperations)
		}
	})

	t.Run("Options", func(t *testing.T) {
		reg := calc.NewRegistry()
		application, err := New([]string{"bigmod"}, &bytes.Buffer{}, WithRegistry(reg), WithOracle(nil))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if application.Registry != reg {
			t.Error("WithRegistry was not applied")
		}
		if application.Oracle != nil {
			t.Error("WithOracle(nil) should disable the oracle")
		}
	})

	t.Run("Help", func(t *testing.T) {
		var errOut bytes.Buffer
		_, err := New([]string{"bigmod", "-h"}, &errOut)
		if !IsHelpError(err) {
			t.Fatalf("Expected a help error, got %v", err)
		}
		if !strings.Contains(errOut.String(), "Usage:") {
			t.Errorf("Expected usage on the error writer, got:\n%s", errOut.String())
		}
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		_, err := New([]string{"bigmod", "-ops", "pow"}, &bytes.Buffer{})
		if err == nil || IsHelpError(err) {
			t.Fatalf("Expected a configuration error, got %v", err)
		}
	})
}

func TestRun_Quiet(t *testing.T) {
	code, out, _ := run(t, smallArgs("-ops", "add,sub", "-quiet"))
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if out != "add=42\nsub=9982\n" {
		t.Errorf("unexpected quiet output:\n%s", out)
	}
}

func TestRun_QuietPartial(t *testing.T) {
	args := []string{"bigmod", "-base", "10", "-size", "4", "-a", "12", "-b", "30", "-m", "100",
		"-ops", "add,mod", "-quiet", "-log-level", "disabled"}
	code, out, _ := run(t, args)
	if code != apperrors.ExitErrorPartial {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorPartial)
	}
	if !strings.Contains(out, "add=42") || !strings.Contains(out, "mod=error: zero modulus") {
		t.Errorf("unexpected quiet output:\n%s", out)
	}
}

func TestRun_JSON(t *testing.T) {
	code, out, _ := run(t, smallArgs("-ops", "add", "-json"))
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	var results []cli.JSONResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(results) != 1 || results[0].Name != "add" || results[0].Value != "42" {
		t.Errorf("unexpected results: %+v", results)
	}
	if results[0].Exact != "42" || results[0].Diverges {
		t.Errorf("expected an exact match, got %+v", results[0])
	}
}

func TestRun_Table(t *testing.T) {
	code, out, _ := run(t, smallArgs("-ops", "add,sub"))
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	for _, want := range []string{
		"--- Starting Execution ---",
		"--- Results ---",
		"Global Status: Success. All 2 operations produced a value.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRun_Metrics(t *testing.T) {
	_, out, _ := run(t, smallArgs("-ops", "add", "-quiet", "-metrics"))
	if !strings.Contains(out, "bigmod_heap_alloc_bytes") {
		t.Errorf("expected the Prometheus exposition, got:\n%s", out)
	}
}

func TestRun_InvalidOperand(t *testing.T) {
	code, out, errOut := run(t, smallArgs("-a", "12x"))
	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if out != "" {
		t.Errorf("expected no standard output, got:\n%s", out)
	}
	if !strings.Contains(errOut, "invalid operand a") {
		t.Errorf("expected the operand error on stderr, got:\n%s", errOut)
	}
}

func TestRun_Completion(t *testing.T) {
	code, out, _ := run(t, []string{"bigmod", "-completion", "bash"})
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(out, "complete -F _bigmod_completions bigmod") {
		t.Errorf("unexpected completion script:\n%s", out)
	}

	code, _, errOut := run(t, []string{"bigmod", "-completion", "tcsh"})
	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errOut, "unsupported shell") {
		t.Errorf("expected an unsupported shell error, got:\n%s", errOut)
	}
}

func TestRun_Interactive(t *testing.T) {
	restoreGlobals(t)
	var out, errOut bytes.Buffer
	application, err := New(smallArgs("-interactive"), &errOut)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	application.In = strings.NewReader("add\nexit\n")

	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(out.String(), "a + b = 42") {
		t.Errorf("expected the add result, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("expected the session to end, got:\n%s", out.String())
	}
}
