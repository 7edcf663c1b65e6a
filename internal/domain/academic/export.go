package academic

import (
	"fmt"
	"strings"
)

// ExportTitle is the title handed to the share sheet along with the summary
const ExportTitle = "GPA Calculator Data"

// ExportText renders the plain-text summary shared with other apps
func ExportText(r *Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", ExportTitle)
	fmt.Fprintf(&b, "Cumulative GPA: %.2f\n", CumulativeGPA(r))
	fmt.Fprintf(&b, "Total Credits: %.1f\n\n", TotalCredits(r))
	b.WriteString("Semesters:\n")

	blocks := make([]string, len(r.Semesters))
	for i, s := range r.Semesters {
		lines := make([]string, len(s.Courses))
		for j, c := range s.Courses {
			lines[j] = fmt.Sprintf("  %s: %s (%s credits)", c.Name, c.Grade, formatNumber(c.Credits))
		}
		blocks[i] = fmt.Sprintf("%s - GPA: %.2f\n%s", s.Name, SemesterGPA(s), strings.Join(lines, "\n"))
	}
	b.WriteString(strings.Join(blocks, "\n\n"))
	return b.String()
}
