package format

import (
	"fmt"
	"time"
)

// FmtPercent formats a coverage percentage with two decimals, e.g. "66.67%".
// Whole values drop the fraction: "100%".
func FmtPercent(p float64) string {
	if p == float64(int(p)) {
		return fmt.Sprintf("%d%%", int(p))
	}
	return fmt.Sprintf("%.2f%%", p)
}

// FmtDuration renders a duration at second resolution, e.g. "1m30s".
func FmtDuration(d time.Duration) string {
	return d.Truncate(time.Second).String()
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// BoolMark returns "✓" for true and "✗" for false.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}
