package source

import (
	"bufio"
	"context"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/dayreport/internal/report"
)

// noteLinePattern matches an optional leading HH:MM token followed by
// free text, e.g. "09:10 crash dump analysis".
var noteLinePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s+(.+)$`)

// Notes converts manually authored note lines into entries. Each line is
// one activity item; the origin qualifier records where the lines came
// from ("manual" for command-line notes, the file name otherwise).
type Notes struct {
	Origin string
	Lines  []string
}

// NewNotes creates a Notes source over already-materialized lines.
func NewNotes(origin string, lines []string) *Notes {
	return &Notes{Origin: origin, Lines: lines}
}

// Name implements Source.
func (s *Notes) Name() string {
	return "note:" + s.Origin
}

// Collect implements Source. It never fails: malformed time tokens
// degrade to untimed entries and blank lines are dropped.
func (s *Notes) Collect(_ context.Context, day time.Time) ([]report.Entry, error) {
	src := report.Source{Kind: report.KindNote, Qualifier: s.Origin}
	var entries []report.Entry
	for _, line := range s.Lines {
		if e, ok := parseNoteLine(line, day, src); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// parseNoteLine parses one note line. A well-formed leading time token
// produces a timed entry; anything else keeps the whole line as an
// untimed entry. Lines that normalize to empty are dropped.
func parseNoteLine(line string, day time.Time, src report.Source) (report.Entry, bool) {
	line = strings.TrimSpace(line)
	if m := noteLinePattern.FindStringSubmatch(line); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if hh < 24 && mm < 60 {
			when := time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, day.Location())
			return report.NewTimedEntry(when, src, m[3])
		}
		// Out-of-range token such as "25:99": no time, keep the text.
	}
	return report.NewEntry(day, src, line)
}

// ReadNoteLines reads a note file into lines, stripping a UTF-8 BOM if
// present. The file handle is closed on all paths.
func ReadNoteLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
