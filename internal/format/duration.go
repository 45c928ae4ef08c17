// Package format renders durations, counts and long digit strings for the
// CLI and REPL output.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats an operation duration for display. Most
// engine operations finish in well under a millisecond, so the unit adapts:
// "< 1µs" below a microsecond, whole microseconds below a millisecond, whole
// milliseconds below a second and time.Duration's own form above.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
