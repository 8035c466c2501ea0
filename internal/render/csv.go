package render

import (
	"encoding/csv"
	"strings"
	"time"

	"github.com/xolan/dayreport/internal/report"
)

// renderCSV produces the tabular rendering: a header row followed by one
// row per entry. encoding/csv applies standard quoting (fields containing
// the delimiter, quote character, or newline are quoted, embedded quotes
// doubled). An unknown time renders as an empty field.
func renderCSV(entries []report.Entry, date time.Time) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	// Writes to a strings.Builder cannot fail, so the writer error is
	// checked once after flush.
	_ = w.Write([]string{"date", "time", "source", "summary"})
	for _, e := range entries {
		timeField := ""
		if e.Timed {
			timeField = e.TimeLabel()
		}
		_ = w.Write([]string{dateLabel(date), timeField, e.Source.String(), e.Summary})
	}
	w.Flush()
	return b.String()
}
