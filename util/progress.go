package util

import (
	"fmt"
	"io"
)

// FormatPercent formats a ratio such as 0.125 as "12.50%"
func FormatPercent(n float64) string {
	return fmt.Sprintf("%.2f%%", n*100)
}

// PrintProgress rewrites the current terminal line with count/max. The
// line is terminated once count reaches max.
func PrintProgress(w io.Writer, count, max int, label string) {
	ratio := 1.0
	if max > 0 {
		ratio = float64(count) / float64(max)
	}

	fmt.Fprintf(w, "\r%s %d/%d (%s)", label, count, max, FormatPercent(ratio))
	if count >= max {
		fmt.Fprintln(w)
	}
}
