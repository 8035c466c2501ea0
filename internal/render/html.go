package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/xolan/dayreport/internal/report"
)

// htmlStyle is the embedded stylesheet for the card layout. One visually
// distinct block per entry, with a per-source badge.
const htmlStyle = `body{font-family:system-ui,-apple-system,Segoe UI,Roboto,sans-serif;margin:24px;background:#f7f8fa;color:#1f2937}
.wrap{max-width:860px;margin:0 auto}
h1{font-size:22px;margin:0 0 16px}
.item{display:flex;align-items:center;gap:10px;background:#fff;border:1px solid #e5e7eb;border-radius:10px;padding:10px 12px;margin:8px 0;box-shadow:0 1px 2px rgba(0,0,0,.04)}
.time{font-weight:600;color:#2563eb;min-width:52px}
.summary{flex:1}
.badge{font-size:12px;padding:2px 8px;border-radius:999px;background:#eef2ff;color:#3730a3;border:1px solid #c7d2fe}
.badge.commit{background:#ecfdf5;color:#065f46;border-color:#a7f3d0}
.badge.working{background:#fff7ed;color:#9a3412;border-color:#fed7aa}
.badge.note{background:#f1f5f9;color:#0f172a;border-color:#e2e8f0}`

// renderHTML produces a self-contained document with one card per entry.
// Output depends only on the entries and the date, never on the clock.
func renderHTML(entries []report.Entry, date time.Time) string {
	title := dateLabel(date) + " activity"

	var rows strings.Builder
	if len(entries) == 0 {
		rows.WriteString(`<div class="item"><div class="summary">(no entries)</div></div>` + "\n")
	}
	for _, e := range entries {
		fmt.Fprintf(&rows,
			`<div class="item"><div class="time">%s</div><div class="summary">%s</div><div><span class="badge %s">%s</span></div></div>`+"\n",
			e.TimeLabel(),
			html.EscapeString(e.Summary),
			e.Source.Kind,
			html.EscapeString(e.Source.String()),
		)
	}

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width,initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<style>%s</style>\n", htmlStyle)
	b.WriteString("</head>\n<body><div class=\"wrap\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))
	b.WriteString(rows.String())
	b.WriteString("</div></body>\n</html>\n")
	return b.String()
}
