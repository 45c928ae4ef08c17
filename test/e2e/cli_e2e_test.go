package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and checks its output and exit codes.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "bigmod"
	if runtime.GOOS == "windows" {
		binName = "bigmod.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/bigmod")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build bigmod: %v", err)
	}

	small := []string{"-base", "10", "-size", "4", "-a", "12", "-b", "30", "-m", "1111"}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{
			name:     "Quiet Addition",
			args:     append(append([]string{}, small...), "-ops", "add", "-quiet"),
			wantOut:  "add=42",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Table",
			args:     append(append([]string{}, small...), "-ops", "add,sub,mul"),
			wantOut:  "Global Status: Success",
			wantCode: 0,
		},
		{
			name:     "Default Session Is Partial",
			args:     []string{},
			wantOut:  "Global Status: Partial",
			wantCode: 3,
		},
		{
			name:     "JSON",
			args:     append(append([]string{}, small...), "-ops", "sub", "-json"),
			wantOut:  `"value": "9982"`,
			wantCode: 0,
		},
		{
			name:     "Unknown Operation",
			args:     []string{"-ops", "pow"},
			wantOut:  "unrecognized operation",
			wantCode: 4,
		},
		{
			name:     "Invalid Operand",
			args:     []string{"-a", "twelve"},
			wantOut:  "invalid operand a",
			wantCode: 4,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "bigmod",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("Command failed to run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
