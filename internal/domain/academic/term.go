package academic

import (
	"fmt"
	"time"
)

// TermName names the academic term t falls in, e.g. "Fall 2026".
// January to May is Spring, June and July are Summer, the rest is Fall.
func TermName(t time.Time) string {
	var season string
	switch m := t.Month(); {
	case m <= time.May:
		season = "Spring"
	case m <= time.July:
		season = "Summer"
	default:
		season = "Fall"
	}
	return fmt.Sprintf("%s %d", season, t.Year())
}
