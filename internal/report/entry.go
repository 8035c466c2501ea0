// Package report defines the canonical activity entry model and the
// merge step that combines entries collected from multiple sources.
package report

import (
	"regexp"
	"strings"
	"time"
)

// Kind identifies the type of source an entry was collected from.
type Kind string

const (
	// KindCommit marks entries extracted from version-control history.
	KindCommit Kind = "commit"
	// KindWorking marks entries synthesized from uncommitted changes.
	KindWorking Kind = "working"
	// KindNote marks entries parsed from manual note lines.
	KindNote Kind = "note"
)

// Source identifies where an entry came from: the source kind plus an
// optional qualifier such as the repository name or note origin.
type Source struct {
	Kind      Kind   `json:"kind"`
	Qualifier string `json:"qualifier,omitempty"`
}

// String returns the display form, e.g. "commit:myrepo" or "note".
func (s Source) String() string {
	if s.Qualifier == "" {
		return string(s.Kind)
	}
	return string(s.Kind) + ":" + s.Qualifier
}

// Entry represents a single activity item for the target date.
// Entries are immutable once constructed; merge and render only
// reorder and select, never mutate.
type Entry struct {
	Date    time.Time `json:"date"`
	Time    time.Time `json:"time"`
	Timed   bool      `json:"timed"`
	Source  Source    `json:"source"`
	Summary string    `json:"summary"`
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// NormalizeSummary collapses all runs of whitespace to single spaces and
// trims the result. Multi-line input becomes a single line.
func NormalizeSummary(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// NewEntry constructs an untimed entry for the given date.
// Returns ok=false when the summary normalizes to empty; such items
// must be dropped by the caller.
func NewEntry(date time.Time, src Source, summary string) (Entry, bool) {
	summary = NormalizeSummary(summary)
	if summary == "" {
		return Entry{}, false
	}
	return Entry{
		Date:    startOfDay(date),
		Source:  src,
		Summary: summary,
	}, true
}

// NewTimedEntry constructs a timed entry. The date is derived from the
// timestamp and the time is truncated to minute precision.
// Returns ok=false when the summary normalizes to empty.
func NewTimedEntry(when time.Time, src Source, summary string) (Entry, bool) {
	summary = NormalizeSummary(summary)
	if summary == "" {
		return Entry{}, false
	}
	when = when.Truncate(time.Minute)
	return Entry{
		Date:    startOfDay(when),
		Time:    when,
		Timed:   true,
		Source:  src,
		Summary: summary,
	}, true
}

// TimeLabel returns the entry time as "HH:MM", or "--:--" when unknown.
func (e Entry) TimeLabel() string {
	if !e.Timed {
		return "--:--"
	}
	return e.Time.Format("15:04")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
