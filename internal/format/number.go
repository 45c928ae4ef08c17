package format

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// TruncationLimit is the length from which a digit string is shortened
	// in standard output to avoid flooding the terminal.
	TruncationLimit = 64
	// DisplayEdges is the number of characters kept at each end of a
	// truncated digit string.
	DisplayEdges = 20
)

// FormatNumberString inserts thousand separators into a numeric string.
//
// Parameters:
//   - s: The numeric string to format.
//
// Returns:
//   - string: The formatted string with comma separators.
func FormatNumberString(s string) string {
	if len(s) == 0 {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	var builder strings.Builder
	builder.Grow(len(prefix) + n + (n-1)/3)
	builder.WriteString(prefix)

	firstGroupLen := n % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	builder.WriteString(s[:firstGroupLen])
	for i := firstGroupLen; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}

// Count formats an unsigned integer with thousand separators.
func Count(n uint64) string {
	return FormatNumberString(strconv.FormatUint(n, 10))
}

// Bytes renders a byte count with a binary unit, e.g. "1.5 MiB".
func Bytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Truncate shortens s to its first and last DisplayEdges characters when it
// is longer than TruncationLimit. The second result reports whether s was
// shortened.
func Truncate(s string) (string, bool) {
	if len(s) <= TruncationLimit {
		return s, false
	}
	return s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:], true
}
