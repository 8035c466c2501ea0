package render

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/xolan/dayreport/internal/report"
)

var testDate = time.Date(2025, 9, 20, 0, 0, 0, 0, time.Local)

func testEntries(t *testing.T) []report.Entry {
	t.Helper()
	note := report.Source{Kind: report.KindNote}
	commit := report.Source{Kind: report.KindCommit, Qualifier: "myrepo"}

	e1, _ := report.NewTimedEntry(testDate.Add(9*time.Hour+10*time.Minute), note, "crash dump analysis")
	e2, _ := report.NewTimedEntry(testDate.Add(11*time.Hour+30*time.Minute), commit, "fix bug")
	e3, _ := report.NewEntry(testDate, note, "no time here")
	return []report.Entry{e1, e2, e3}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"markdown", "md", FormatMarkdown, false},
		{"html", "html", FormatHTML, false},
		{"csv", "csv", FormatCSV, false},
		{"json", "json", FormatJSON, false},
		{"unknown", "pdf", "", true},
		{"empty", "", "", true},
		{"wrong case", "MD", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) should return an error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatExt(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatMarkdown, ".md"},
		{FormatHTML, ".html"},
		{FormatCSV, ".csv"},
		{FormatJSON, ".json"},
	}

	for _, tt := range tests {
		if got := tt.format.Ext(); got != tt.expected {
			t.Errorf("%q.Ext() = %q, expected %q", tt.format, got, tt.expected)
		}
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	if _, err := Render(nil, testDate, Format("pdf")); err == nil {
		t.Fatal("Render with unsupported format should return an error")
	}
}

func TestRender_Deterministic(t *testing.T) {
	entries := testEntries(t)
	for _, format := range []Format{FormatMarkdown, FormatHTML, FormatCSV, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			first, err := Render(entries, testDate, format)
			if err != nil {
				t.Fatalf("Render returned error: %v", err)
			}
			for i := 0; i < 3; i++ {
				again, err := Render(entries, testDate, format)
				if err != nil {
					t.Fatalf("Render returned error: %v", err)
				}
				if again != first {
					t.Fatalf("Render is not deterministic for %s", format)
				}
			}
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := Render(testEntries(t), testDate, FormatMarkdown)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("markdown output has %d lines, expected 4:\n%s", len(lines), out)
	}
	if lines[0] != "# 2025-09-20" {
		t.Errorf("heading = %q", lines[0])
	}
	if lines[1] != "- 09:10 — [note] crash dump analysis" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != "- 11:30 — [commit:myrepo] fix bug" {
		t.Errorf("line 2 = %q", lines[2])
	}
	if lines[3] != "- --:-- — [note] no time here" {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	out, err := Render(nil, testDate, FormatMarkdown)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "(no entries)") {
		t.Errorf("empty markdown should contain placeholder, got:\n%s", out)
	}
}

func TestRenderHTML(t *testing.T) {
	note := report.Source{Kind: report.KindNote}
	e, _ := report.NewTimedEntry(testDate.Add(10*time.Hour), note, `review <script> & "quotes"`)

	out, err := Render([]report.Entry{e}, testDate, FormatHTML)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(out, "<!doctype html>") {
		t.Error("html output should be a self-contained document")
	}
	if !strings.Contains(out, `class="badge note"`) {
		t.Error("html output should carry a source badge classed by kind")
	}
	if strings.Contains(out, "<script>") {
		t.Error("summary must be escaped")
	}
	if !strings.Contains(out, "review &lt;script&gt; &amp; &#34;quotes&#34;") {
		t.Errorf("escaped summary missing from output:\n%s", out)
	}
}

func TestRenderHTML_UntimedPlaceholder(t *testing.T) {
	note := report.Source{Kind: report.KindNote}
	e, _ := report.NewEntry(testDate, note, "untimed item")

	out, err := Render([]report.Entry{e}, testDate, FormatHTML)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, `<div class="time">--:--</div>`) {
		t.Errorf("untimed entry should show placeholder time:\n%s", out)
	}
}

func TestRenderCSV(t *testing.T) {
	out, err := Render(testEntries(t), testDate, FormatCSV)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("CSV has %d records, expected header + 3 rows", len(records))
	}
	header := records[0]
	if strings.Join(header, ",") != "date,time,source,summary" {
		t.Errorf("header = %v", header)
	}
	if records[1][0] != "2025-09-20" || records[1][1] != "09:10" || records[1][2] != "note" {
		t.Errorf("row 1 = %v", records[1])
	}
	if records[3][1] != "" {
		t.Errorf("untimed row should have empty time field, got %q", records[3][1])
	}
}

func TestRenderCSV_Escaping(t *testing.T) {
	note := report.Source{Kind: report.KindNote}
	e, _ := report.NewTimedEntry(testDate.Add(9*time.Hour), note, `fixed "critical" bug, finally`)

	out, err := Render([]report.Entry{e}, testDate, FormatCSV)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(out, `"fixed ""critical"" bug, finally"`) {
		t.Errorf("field with quotes and comma should be quoted with doubled quotes:\n%s", out)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if records[1][3] != `fixed "critical" bug, finally` {
		t.Errorf("round-tripped summary = %q", records[1][3])
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := Render(testEntries(t), testDate, FormatJSON)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	var decoded struct {
		Date    string `json:"date"`
		Entries []struct {
			Time    *string `json:"time"`
			Source  string  `json:"source"`
			Summary string  `json:"summary"`
		} `json:"entries"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Date != "2025-09-20" {
		t.Errorf("date = %q", decoded.Date)
	}
	if len(decoded.Entries) != 3 {
		t.Fatalf("entries length = %d, expected 3", len(decoded.Entries))
	}
	if decoded.Entries[0].Time == nil || *decoded.Entries[0].Time != "09:10" {
		t.Errorf("entries[0].time = %v", decoded.Entries[0].Time)
	}
	if decoded.Entries[2].Time != nil {
		t.Errorf("untimed entry should serialize time as null, got %v", *decoded.Entries[2].Time)
	}
	if decoded.Entries[1].Source != "commit:myrepo" {
		t.Errorf("entries[1].source = %q", decoded.Entries[1].Source)
	}
}

func TestRenderJSON_Empty(t *testing.T) {
	out, err := Render(nil, testDate, FormatJSON)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	compact := strings.Join(strings.Fields(out), "")
	if compact != `{"date":"2025-09-20","entries":[]}` {
		t.Errorf("empty JSON render = %s", out)
	}
}
