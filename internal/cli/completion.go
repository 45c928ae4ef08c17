package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for completion scripts. Every shell
// generator reads flagRegistry, so a new flag only needs a new entry.
type FlagCompletion struct {
	Name      string   // flag name without the leading dash
	Help      string   // description text
	Values    []string // suggested values, nil when none
	ValueName string   // value label for zsh; empty for boolean flags
	IsOps     bool     // values come from the operation registry
}

var flagRegistry = []FlagCompletion{
	{Name: "base", Help: "Radix of every digit", Values: []string{"2", "10", "16", "1000"}, ValueName: "base"},
	{Name: "size", Help: "Digit capacity", Values: []string{"4", "64", "2048"}, ValueName: "digits"},
	{Name: "a", Help: "First operand", ValueName: "integer"},
	{Name: "b", Help: "Second operand", ValueName: "integer"},
	{Name: "m", Help: "Modulus and divisor", ValueName: "integer"},
	{Name: "digits", Help: "Read operands as digit strings"},
	{Name: "exp", Help: "Exponent for modpow and rsh", ValueName: "number"},
	{Name: "ops", Help: "Operations to run", IsOps: true, ValueName: "operation"},
	{Name: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m"}, ValueName: "duration"},
	{Name: "v", Help: "Display full-width values"},
	{Name: "d", Help: "Display exact values and memory statistics"},
	{Name: "quiet", Help: "One name=value line per operation"},
	{Name: "json", Help: "Output results as JSON"},
	{Name: "no-color", Help: "Disable colored output"},
	{Name: "interactive", Help: "Start the interactive session"},
	{Name: "metrics", Help: "Print Prometheus metrics after the run"},
	{Name: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error", "disabled"}, ValueName: "level"},
	{Name: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// valuesFor returns the suggestions of a flag, resolving operation names.
func valuesFor(f FlagCompletion, ops []string) []string {
	if f.IsOps {
		return append(append([]string(nil), ops...), "all")
	}
	return f.Values
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh" or
// "fish") listing ops as the values of -ops.
func GenerateCompletion(out io.Writer, shell string, ops []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(ops)
	case "zsh":
		script = zshCompletion(ops)
	case "fish":
		script = fishCompletion(ops)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func bashCompletion(ops []string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, "-"+f.Name)
		vals := valuesFor(f, ops)
		if len(vals) == 0 {
			continue
		}
		fmt.Fprintf(&cases, "        -%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
			f.Name, strings.Join(vals, " "))
	}

	return fmt.Sprintf(`# Bash completion script for bigmod
# Add this to your ~/.bashrc or ~/.bash_completion

_bigmod_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _bigmod_completions bigmod
`, strings.Join(opts, " "), cases.String())
}

func zshCompletion(ops []string) string {
	var args []string
	for _, f := range flagRegistry {
		suffix := ""
		if vals := valuesFor(f, ops); len(vals) > 0 {
			suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(vals, " "))
		} else if f.ValueName != "" {
			suffix = fmt.Sprintf(":%s:", f.ValueName)
		}
		args = append(args, fmt.Sprintf("        '-%s[%s]%s'", f.Name, f.Help, suffix))
	}

	return fmt.Sprintf(`#compdef bigmod

# Zsh completion script for bigmod
# Place this file in a directory of your $fpath

_bigmod() {
    _arguments \
%s
}

_bigmod "$@"
`, strings.Join(args, " \\\n"))
}

func fishCompletion(ops []string) string {
	lines := []string{
		"# Fish completion script for bigmod",
		"# Add this to ~/.config/fish/completions/bigmod.fish",
		"",
		"complete -c bigmod -f",
	}
	for _, f := range flagRegistry {
		line := fmt.Sprintf("complete -c bigmod -o %s -d '%s'", f.Name, f.Help)
		if vals := valuesFor(f, ops); len(vals) > 0 {
			line += fmt.Sprintf(" -xa '%s'", strings.Join(vals, " "))
		} else if f.ValueName != "" {
			line += " -x"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n") + "\n"
}
