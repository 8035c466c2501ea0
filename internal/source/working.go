package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xolan/dayreport/internal/report"
	"github.com/xolan/dayreport/internal/timeutil"
)

// maxNamedFiles is the largest change count for which the synthesized
// summary lists individual file names.
const maxNamedFiles = 5

// GitWorking synthesizes at most one entry per repository describing
// files modified on the target day but not yet committed.
type GitWorking struct {
	Repo   string
	Runner Runner
}

// NewGitWorking creates a GitWorking source for the given repository path.
func NewGitWorking(repo string) *GitWorking {
	return &GitWorking{Repo: repo, Runner: ExecRunner{}}
}

// Name implements Source.
func (s *GitWorking) Name() string {
	return "working:" + repoName(s.Repo)
}

// Collect implements Source.
func (s *GitWorking) Collect(ctx context.Context, day time.Time) ([]report.Entry, error) {
	if err := checkGitRepo(ctx, s.Runner, s.Repo); err != nil {
		return nil, err
	}
	out, err := s.Runner.Run(ctx, s.Repo, "git", "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return workingEntry(s.Repo, parseGitStatus(out), day), nil
}

// SvnWorking is the subversion counterpart of GitWorking.
type SvnWorking struct {
	Repo   string
	Runner Runner
}

// NewSvnWorking creates a SvnWorking source for the given working copy path.
func NewSvnWorking(repo string) *SvnWorking {
	return &SvnWorking{Repo: repo, Runner: ExecRunner{}}
}

// Name implements Source.
func (s *SvnWorking) Name() string {
	return "working:" + repoName(s.Repo)
}

// Collect implements Source.
func (s *SvnWorking) Collect(ctx context.Context, day time.Time) ([]report.Entry, error) {
	if err := checkSvnRepo(ctx, s.Runner, s.Repo); err != nil {
		return nil, err
	}
	out, err := s.Runner.Run(ctx, s.Repo, "svn", "status")
	if err != nil {
		return nil, err
	}
	return workingEntry(s.Repo, parseSvnStatus(out), day), nil
}

// parseGitStatus extracts the relative paths from `git status --porcelain`
// output. Renames ("R  old -> new") contribute the new path.
func parseGitStatus(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 || strings.TrimSpace(line) == "" {
			continue
		}
		rel := strings.TrimSpace(line[3:])
		if i := strings.Index(rel, " -> "); i >= 0 {
			rel = rel[i+4:]
		}
		rel = strings.Trim(rel, `"`)
		if rel != "" {
			paths = append(paths, rel)
		}
	}
	return paths
}

// parseSvnStatus extracts the relative paths from `svn status` output.
// The path column starts at offset 8; shorter lines fall back to
// trimming the status column.
func parseSvnStatus(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var rel string
		if len(line) > 8 {
			rel = strings.TrimSpace(line[8:])
		} else if len(line) > 1 {
			rel = strings.TrimSpace(line[1:])
		}
		if rel != "" {
			paths = append(paths, rel)
		}
	}
	return paths
}

// workingEntry folds the changed paths whose modification time falls on
// the target day into a single synthesized entry. The entry time is the
// latest qualifying modification time. Returns nil when nothing qualifies.
func workingEntry(repo string, rels []string, day time.Time) []report.Entry {
	start := timeutil.StartOfDay(day)
	end := timeutil.EndOfDay(day)

	var names []string
	var latest time.Time
	for _, rel := range rels {
		info, err := os.Stat(filepath.Join(repo, rel))
		if err != nil {
			// Deleted files have no mtime to place on a day.
			continue
		}
		mtime := info.ModTime().In(time.Local)
		if !timeutil.IsInRange(mtime, start, end) {
			continue
		}
		names = append(names, rel)
		if mtime.After(latest) {
			latest = mtime
		}
	}
	if len(names) == 0 {
		return nil
	}

	src := report.Source{Kind: report.KindWorking, Qualifier: repoName(repo)}
	e, ok := report.NewTimedEntry(latest, src, workingSummary(names))
	if !ok {
		return nil
	}
	return []report.Entry{e}
}

// workingSummary builds the synthesized sentence, naming files only when
// the change set is small.
func workingSummary(names []string) string {
	noun := "uncommitted changes"
	if len(names) == 1 {
		noun = "uncommitted change"
	}
	if len(names) > maxNamedFiles {
		return fmt.Sprintf("%d %s", len(names), noun)
	}
	return fmt.Sprintf("%d %s: %s", len(names), noun, strings.Join(names, ", "))
}
