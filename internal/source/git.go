package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/dayreport/internal/report"
	"github.com/xolan/dayreport/internal/timeutil"
)

// gitLogFormat yields one record per commit: hash, author date, subject,
// separated by the ASCII unit separator.
const gitLogFormat = "%H%x1f%ad%x1f%s"

// GitLog collects commits authored on the target day from one git
// repository.
type GitLog struct {
	Repo   string
	Author string // optional --author filter; empty means all authors
	Runner Runner
}

// NewGitLog creates a GitLog source for the given repository path.
func NewGitLog(repo, author string) *GitLog {
	return &GitLog{Repo: repo, Author: author, Runner: ExecRunner{}}
}

// Name implements Source.
func (s *GitLog) Name() string {
	return "git:" + repoName(s.Repo)
}

// Collect implements Source. Commits are returned ascending by commit
// time; git log emits newest first, so the parsed list is reversed.
func (s *GitLog) Collect(ctx context.Context, day time.Time) ([]report.Entry, error) {
	if err := checkGitRepo(ctx, s.Runner, s.Repo); err != nil {
		return nil, err
	}

	start := timeutil.StartOfDay(day)
	end := timeutil.EndOfDay(day)
	args := []string{
		"log",
		"--since=" + start.Format("2006-01-02 15:04:05"),
		"--until=" + end.Format("2006-01-02 15:04:05"),
		"--date=iso-strict",
		"--pretty=" + gitLogFormat,
	}
	if s.Author != "" {
		args = append(args, "--author="+s.Author)
	}

	out, err := s.Runner.Run(ctx, s.Repo, "git", args...)
	if err != nil {
		return nil, err
	}

	entries := parseGitLog(out, day, repoName(s.Repo))
	reverse(entries)
	return entries, nil
}

// checkGitRepo verifies that path is inside a git work tree.
func checkGitRepo(ctx context.Context, r Runner, path string) error {
	out, err := r.Run(ctx, path, "git", "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return fmt.Errorf("not a git repository: %w", err)
	}
	if strings.TrimSpace(out) != "true" {
		return fmt.Errorf("not a git work tree: %s", path)
	}
	return nil
}

// parseGitLog turns git log output into entries for the given day.
// Records that fail to parse and commits that fall outside the day are
// skipped rather than failing the whole listing.
func parseGitLog(out string, day time.Time, repo string) []report.Entry {
	src := report.Source{Kind: report.KindCommit, Qualifier: repo}
	var entries []report.Entry
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\x1f")
		if len(parts) != 3 {
			continue
		}
		when, err := parseCommitTime(parts[1])
		if err != nil || !timeutil.SameDay(when, day) {
			continue
		}
		if e, ok := report.NewTimedEntry(when, src, parts[2]); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// parseCommitTime parses an iso-strict author date and normalizes it to
// local wall-clock so cross-source ordering is consistent.
func parseCommitTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Some git configurations emit the non-strict iso form.
		t, err = time.Parse("2006-01-02 15:04:05 -0700", s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.In(time.Local), nil
}

func reverse(entries []report.Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
