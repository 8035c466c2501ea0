package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xolan/dayreport/internal/report"
	"github.com/xolan/dayreport/internal/timeutil"
)

// SvnLog collects commits authored on the target day from one subversion
// working copy.
type SvnLog struct {
	Repo   string
	Author string // optional author filter; empty means all authors
	Runner Runner
}

// NewSvnLog creates a SvnLog source for the given working copy path.
func NewSvnLog(repo, author string) *SvnLog {
	return &SvnLog{Repo: repo, Author: author, Runner: ExecRunner{}}
}

// Name implements Source.
func (s *SvnLog) Name() string {
	return "svn:" + repoName(s.Repo)
}

// svnLogDoc mirrors the `svn log --xml` document structure.
type svnLogDoc struct {
	Entries []svnLogEntry `xml:"logentry"`
}

type svnLogEntry struct {
	Revision string `xml:"revision,attr"`
	Author   string `xml:"author"`
	Date     string `xml:"date"`
	Msg      string `xml:"msg"`
}

// Collect implements Source.
func (s *SvnLog) Collect(ctx context.Context, day time.Time) ([]report.Entry, error) {
	if err := checkSvnRepo(ctx, s.Runner, s.Repo); err != nil {
		return nil, err
	}

	start := timeutil.StartOfDay(day)
	end := timeutil.EndOfDay(day)
	rangeArg := fmt.Sprintf("-r{%s}:{%s}",
		start.Format("2006-01-02 15:04:05"),
		end.Format("2006-01-02 15:04:05"))

	out, err := s.Runner.Run(ctx, s.Repo, "svn", "log", "--xml", rangeArg)
	if err != nil {
		return nil, err
	}

	return parseSvnLog(out, day, repoName(s.Repo), s.Author)
}

// checkSvnRepo verifies that path is a subversion working copy: either an
// .svn directory is present or `svn info` succeeds.
func checkSvnRepo(ctx context.Context, r Runner, path string) error {
	if info, err := os.Stat(filepath.Join(path, ".svn")); err == nil && info.IsDir() {
		return nil
	}
	if _, err := r.Run(ctx, path, "svn", "info"); err != nil {
		return fmt.Errorf("not a svn working copy: %w", err)
	}
	return nil
}

// parseSvnLog turns `svn log --xml` output into entries for the given
// day. Commit dates are UTC in the XML and are normalized to local
// wall-clock before the day filter is applied.
func parseSvnLog(out string, day time.Time, repo, author string) ([]report.Entry, error) {
	var doc svnLogDoc
	if err := xml.Unmarshal([]byte(out), &doc); err != nil {
		return nil, fmt.Errorf("parse svn log: %w", err)
	}

	src := report.Source{Kind: report.KindCommit, Qualifier: repo}
	var entries []report.Entry
	for _, rec := range doc.Entries {
		if author != "" && rec.Author != author {
			continue
		}
		when, err := time.Parse(time.RFC3339, strings.TrimSpace(rec.Date))
		if err != nil {
			continue
		}
		when = when.In(time.Local)
		if !timeutil.SameDay(when, day) {
			continue
		}
		if e, ok := report.NewTimedEntry(when, src, rec.Msg); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
