package helpers

import (
	"fmt"
	"time"
)

// FormatYear returns the four digit year of t, used for the footer stamp
func FormatYear(t time.Time) string {
	return fmt.Sprintf("%d", t.Year())
}

// FormatCount formats a count with a singular or plural noun (e.g., 1 -> "1 product")
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
