// Package render turns an ordered entry sequence into one of the
// supported output encodings. All renderers are pure functions: the same
// entries and date always produce byte-identical output.
package render

import (
	"fmt"
	"time"

	"github.com/xolan/dayreport/internal/report"
)

// Format is the closed set of output encodings.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMarkdown, FormatHTML, FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format '%s' (supported: md, html, csv, json)", s)
	}
}

// Ext returns the canonical file extension for the format, including the
// leading dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Render dispatches to the renderer for the given format. An unknown
// format is a caller contract violation and returns an error; it is the
// only failure mode.
func Render(entries []report.Entry, date time.Time, format Format) (string, error) {
	switch format {
	case FormatMarkdown:
		return renderMarkdown(entries, date), nil
	case FormatHTML:
		return renderHTML(entries, date), nil
	case FormatCSV:
		return renderCSV(entries, date), nil
	case FormatJSON:
		return renderJSON(entries, date), nil
	default:
		return "", fmt.Errorf("unsupported format '%s' (supported: md, html, csv, json)", format)
	}
}

// dateLabel is the date heading shared by all renderers.
func dateLabel(date time.Time) string {
	return date.Format("2006-01-02")
}
