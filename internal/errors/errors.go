package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit codes. A plan where only some operations failed gets its own
// code so scripts can tell it apart from a total failure.
const (
	ExitSuccess       = 0   // Every operation produced a value.
	ExitErrorGeneric  = 1   // No operation produced a value.
	ExitErrorTimeout  = 2   // The plan deadline expired.
	ExitErrorPartial  = 3   // Some operations of the plan failed.
	ExitErrorConfig   = 4   // Flags, environment or operands were rejected.
	ExitErrorCanceled = 130 // Interrupted by SIGINT or SIGTERM.
)

// ConfigError reports input the application cannot run with: an invalid
// flag, engine parameters out of range or an operand that does not parse.
type ConfigError struct {
	// Message is shown to the user.
	Message string
	// Cause is the engine error behind the message, if any.
	Cause error
}

// Error returns the message, followed by the cause when there is one.
func (e ConfigError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the engine error behind the configuration error, if any.
func (e ConfigError) Unwrap() error { return e.Cause }

// NewConfigError creates a ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A ConfigError without cause.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// OperationError ties an engine failure to the named operation that produced
// it. The cause stays reachable with errors.Is and errors.As.
type OperationError struct {
	// Operation is the registry name of the failed operation (e.g., "gcd").
	Operation string
	// Cause is the engine or context error.
	Cause error
}

// Error returns "operation: cause".
func (e OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Cause)
}

// Unwrap returns the cause.
func (e OperationError) Unwrap() error { return e.Cause }

// TimeoutError records that a plan or operation ran past its deadline.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError names the input field that was rejected and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError prefixes err with a formatted context message, keeping err in the
// chain. It returns nil when err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from a canceled or expired context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
