// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* and Present* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions emit machine-readable output.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/bigmod/internal/orchestration"
)

// JSONResult is the machine-readable form of an operation result.
type JSONResult struct {
	Name       string `json:"name"`
	Signature  string `json:"signature"`
	Value      string `json:"value,omitempty"`
	Digits     string `json:"digits,omitempty"`
	Exact      string `json:"exact,omitempty"`
	Diverges   bool   `json:"diverges"`
	Error      string `json:"error,omitempty"`
	ExactError string `json:"exact_error,omitempty"`
	DurationNs int64  `json:"duration_ns"`
}

// NewJSONResult converts an operation result. Values are decimal; Digits is
// the engine digit string without leading zeros.
func NewJSONResult(res orchestration.OperationResult) JSONResult {
	j := JSONResult{
		Name:       res.Name,
		Signature:  res.Arity,
		Diverges:   res.Diverges(),
		DurationNs: res.Duration.Nanoseconds(),
	}
	if res.Err != nil {
		j.Error = causeOf(res.Err).Error()
	} else {
		j.Value = res.Value.Big().String()
		j.Digits = res.Value.TrimmedString()
	}
	if res.Exact != nil {
		j.Exact = res.Exact.String()
	}
	if res.ExactErr != nil {
		j.ExactError = res.ExactErr.Error()
	}
	return j
}

// WriteJSON writes the results as an indented JSON array.
func WriteJSON(out io.Writer, results []orchestration.OperationResult) error {
	payload := make([]JSONResult, len(results))
	for i, res := range results {
		payload[i] = NewJSONResult(res)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

// FormatQuietResult renders one result as "name=value", or
// "name=error: cause" when the engine failed.
func FormatQuietResult(res orchestration.OperationResult) string {
	if res.Err != nil {
		return fmt.Sprintf("%s=error: %v", res.Name, causeOf(res.Err))
	}
	return fmt.Sprintf("%s=%s", res.Name, res.Value.Big().String())
}

// DisplayQuietResults prints one line per result, for scripts.
func DisplayQuietResults(out io.Writer, results []orchestration.OperationResult) {
	for _, res := range results {
		fmt.Fprintln(out, FormatQuietResult(res))
	}
}

// causeOf strips the operation name added by the orchestrator.
func causeOf(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
