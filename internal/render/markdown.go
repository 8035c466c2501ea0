package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/dayreport/internal/report"
)

// renderMarkdown produces the default structured-text rendering: one list
// item per entry under a single date heading.
func renderMarkdown(entries []report.Entry, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", dateLabel(date))

	if len(entries) == 0 {
		b.WriteString("- (no entries)\n")
		return b.String()
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "- %s — [%s] %s\n", e.TimeLabel(), e.Source, e.Summary)
	}
	return b.String()
}
