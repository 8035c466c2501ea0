package source

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/xolan/dayreport/internal/report"
)

func svnLogXML(entries ...string) string {
	doc := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<log>\n"
	for _, e := range entries {
		doc += e
	}
	return doc + "</log>\n"
}

func svnLogEntryXML(rev, author string, when time.Time, msg string) string {
	return fmt.Sprintf(
		"<logentry revision=\"%s\"><author>%s</author><date>%s</date><msg>%s</msg></logentry>\n",
		rev, author, when.UTC().Format("2006-01-02T15:04:05.000000Z"), msg)
}

func TestParseSvnLog(t *testing.T) {
	day := time.Date(2025, 9, 20, 0, 0, 0, 0, time.Local)
	out := svnLogXML(
		svnLogEntryXML("101", "alex", day.Add(9*time.Hour+30*time.Minute), "update build scripts"),
		svnLogEntryXML("102", "sam", day.Add(15*time.Hour), "fix\n  multi-line\nmessage"),
		svnLogEntryXML("99", "alex", day.AddDate(0, 0, -2).Add(12*time.Hour), "old commit"),
	)

	entries, err := parseSvnLog(out, day, "legacy", "")
	if err != nil {
		t.Fatalf("parseSvnLog returned error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("parseSvnLog returned %d entries, expected 2", len(entries))
	}
	if entries[0].Summary != "update build scripts" {
		t.Errorf("Summary = %q, expected %q", entries[0].Summary, "update build scripts")
	}
	if entries[1].Summary != "fix multi-line message" {
		t.Errorf("multi-line message should collapse, got %q", entries[1].Summary)
	}
	if entries[0].Source.Kind != report.KindCommit || entries[0].Source.Qualifier != "legacy" {
		t.Errorf("unexpected source: %+v", entries[0].Source)
	}
	if entries[0].TimeLabel() != day.Add(9*time.Hour+30*time.Minute).Format("15:04") {
		t.Errorf("TimeLabel = %q", entries[0].TimeLabel())
	}
}

func TestParseSvnLog_AuthorFilter(t *testing.T) {
	day := time.Date(2025, 9, 20, 0, 0, 0, 0, time.Local)
	out := svnLogXML(
		svnLogEntryXML("101", "alex", day.Add(9*time.Hour), "mine"),
		svnLogEntryXML("102", "sam", day.Add(10*time.Hour), "theirs"),
	)

	entries, err := parseSvnLog(out, day, "legacy", "alex")
	if err != nil {
		t.Fatalf("parseSvnLog returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Summary != "mine" {
		t.Fatalf("expected only alex's commit, got %+v", entries)
	}
}

func TestParseSvnLog_BadXML(t *testing.T) {
	if _, err := parseSvnLog("this is not xml <", time.Now(), "legacy", ""); err == nil {
		t.Fatal("parseSvnLog should fail on malformed XML")
	}
}

func TestSvnLog_Collect(t *testing.T) {
	day := time.Date(2025, 9, 20, 0, 0, 0, 0, time.Local)
	repo := t.TempDir() // no .svn dir; detection falls back to `svn info`
	r := &fakeRunner{outputs: map[string]string{
		"svn info": "Path: .\n",
		"svn log": svnLogXML(
			svnLogEntryXML("7", "alex", day.Add(11*time.Hour), "migrate schema"),
		),
	}}

	s := &SvnLog{Repo: repo, Runner: r}
	entries, err := s.Collect(context.Background(), day)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Summary != "migrate schema" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestSvnLog_NotAWorkingCopy(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{
		"svn info": fmt.Errorf("svn: E155007: not a working copy"),
	}}
	s := &SvnLog{Repo: t.TempDir(), Runner: r}

	if _, err := s.Collect(context.Background(), time.Now()); err == nil {
		t.Fatal("Collect should fail outside a working copy")
	}
}
