// Package config provides the configuration management for the bigmod
// application. It defines the configuration structure, parses command-line
// arguments, applies environment overrides and validates the result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/agbru/bigmod/internal/bigint"
	"github.com/agbru/bigmod/internal/calc"
	apperrors "github.com/agbru/bigmod/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by bigmod.
	EnvPrefix = "BIGMOD_"
)

// Default configuration values. They reproduce the sample session: base 10,
// 2048 digits, a=12345, b=67890, m=100 and exponent 3.
const (
	DefaultBase     = bigint.DefaultBase
	DefaultSize     = bigint.DefaultSize
	DefaultA        = "12345"
	DefaultB        = "67890"
	DefaultModulus  = "100"
	DefaultExp      = 3
	DefaultOps      = calc.AllOperations
	DefaultTimeout  = time.Minute
	DefaultLogLevel = "warn"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// AppConfig aggregates the application's configuration parameters, parsed from
// command-line flags and BIGMOD_* environment variables.
type AppConfig struct {
	// Base is the radix of every operand digit.
	Base int
	// Size is the fixed digit capacity of every operand.
	Size int
	// A, B and Modulus are the operands. They are decimal integers unless
	// Digits is set, in which case they are full-width digit strings in Base.
	A       string
	B       string
	Modulus string
	// Digits switches operand parsing to digit strings.
	Digits bool
	// Exp is the exponent of modpow and the shift count of rsh.
	Exp uint64
	// Ops is "all" or a comma-separated list of operation names.
	Ops string
	// Timeout bounds the whole plan.
	Timeout time.Duration
	// Verbose prints full-width digit strings instead of truncated ones.
	Verbose bool
	// Details prints exact values and memory statistics after the table.
	Details bool
	// Quiet prints one name=value line per operation, for scripts.
	Quiet bool
	// JSONOutput prints the results as a JSON array.
	JSONOutput bool
	// NoColor disables colored output. NO_COLOR is honored too.
	NoColor bool
	// Interactive starts the REPL.
	Interactive bool
	// Metrics prints the Prometheus exposition of the run.
	Metrics bool
	// LogLevel is the zerolog global level.
	LogLevel string
	// Completion, if set, prints a completion script for the named shell.
	Completion string
}

// Params returns the engine parameters described by Base and Size.
func (c AppConfig) Params() (bigint.Params, error) {
	p, err := bigint.NewParams(c.Base, c.Size)
	if err != nil {
		return bigint.Params{}, apperrors.ConfigError{Message: "invalid engine parameters", Cause: err}
	}
	return p, nil
}

// Validate checks the semantic consistency of the configuration parameters.
// It returns a ConfigError describing the first problem found.
func (c AppConfig) Validate(availableOps []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if _, err := c.Params(); err != nil {
		return err
	}
	if !contains(validLogLevels, c.LogLevel) {
		return apperrors.NewConfigError("unrecognized log level: '%s'. Valid levels are: [%s]", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if c.Ops == "" || strings.EqualFold(c.Ops, calc.AllOperations) {
		return nil
	}
	for _, name := range strings.Split(c.Ops, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !contains(availableOps, name) {
			return apperrors.NewConfigError("unrecognized operation: '%s'. Valid operations are: 'all' or [%s]", name, strings.Join(availableOps, ", "))
		}
	}
	return nil
}

// Operands builds the engine operands from the configuration. Construction
// failures surface as a ConfigError wrapping the engine error.
func (c AppConfig) Operands() (calc.Operands, error) {
	p, err := c.Params()
	if err != nil {
		return calc.Operands{}, err
	}
	a, err := parseOperand(p, "a", c.A, c.Digits)
	if err != nil {
		return calc.Operands{}, err
	}
	b, err := parseOperand(p, "b", c.B, c.Digits)
	if err != nil {
		return calc.Operands{}, err
	}
	m, err := parseOperand(p, "m", c.Modulus, c.Digits)
	if err != nil {
		return calc.Operands{}, err
	}
	return calc.Operands{A: a, B: b, M: m, Exp: c.Exp}, nil
}

func parseOperand(p bigint.Params, name, text string, digits bool) (bigint.BigInt, error) {
	text = strings.TrimSpace(text)
	if digits {
		x, err := p.FromDigitString(text)
		if err != nil {
			return bigint.BigInt{}, apperrors.ConfigError{Message: fmt.Sprintf("invalid operand %s", name), Cause: err}
		}
		return x, nil
	}
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return bigint.BigInt{}, apperrors.NewConfigError("invalid operand %s: %q is not a decimal integer", name, text)
	}
	return p.FromBig(n), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ParseConfig parses the command-line arguments and populates an AppConfig.
// Flags take priority over BIGMOD_* environment variables, which take priority
// over the defaults. Parsing and usage errors are printed to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableOps []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	opsHelp := fmt.Sprintf("Operations to run: 'all' (default) or a comma-separated list of [%s].", strings.Join(availableOps, ", "))

	config := AppConfig{}
	fs.IntVar(&config.Base, "base", DefaultBase, "Radix of every operand digit.")
	fs.IntVar(&config.Size, "size", DefaultSize, "Fixed digit capacity of every operand.")
	fs.StringVar(&config.A, "a", DefaultA, "First operand.")
	fs.StringVar(&config.B, "b", DefaultB, "Second operand.")
	fs.StringVar(&config.Modulus, "m", DefaultModulus, "Modulus and divisor.")
	fs.BoolVar(&config.Digits, "digits", false, "Read operands as full-width digit strings in the chosen base.")
	fs.Uint64Var(&config.Exp, "exp", DefaultExp, "Exponent for modpow and limb count for rsh.")
	fs.StringVar(&config.Ops, "ops", DefaultOps, opsHelp)
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the whole plan.")
	fs.BoolVar(&config.Verbose, "v", false, "Display full-width digit strings.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&config.Details, "d", false, "Display exact values and memory statistics.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - one name=value line per operation.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive REPL mode.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print Prometheus metrics after the run.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: trace, debug, info, warn, error or disabled.")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Ops = strings.ToLower(strings.TrimSpace(config.Ops))
	config.LogLevel = strings.ToLower(config.LogLevel)
	if err := config.Validate(availableOps); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
