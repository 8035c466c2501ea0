// Package pipeline orchestrates a single report run: resolve sources,
// collect entries, merge, render.
package pipeline

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/xolan/dayreport/internal/render"
	"github.com/xolan/dayreport/internal/report"
	"github.com/xolan/dayreport/internal/source"
)

// Options configure one pipeline run. A fresh Options value is built per
// invocation; the pipeline holds no state across runs.
type Options struct {
	// Date is the report day (midnight, local time).
	Date time.Time
	// GitRepos and SvnRepos are resolved repository paths.
	GitRepos []string
	SvnRepos []string
	// Author restricts commit collection to one identity; empty collects
	// all authors.
	Author string
	// IncludeWorking enables the working-change adapters. When false no
	// working-change detection runs at all.
	IncludeWorking bool
	// NotesFile is an optional note file; ManualNotes are note lines
	// supplied directly (e.g. from the command line).
	NotesFile   string
	ManualNotes []string
	// Format selects the output encoding.
	Format render.Format
	// Runner overrides command execution (tests); nil uses os/exec.
	Runner source.Runner
}

// Warning reports a source that could not contribute entries. Warnings
// never abort the run.
type Warning struct {
	Source string
	Err    error
}

// Result is the outcome of a pipeline run.
type Result struct {
	Entries  []report.Entry
	Text     string
	Ext      string
	Warnings []Warning
}

// Run collects, merges, and renders. Source failures surface as warnings;
// the only returned error is a render contract violation (unknown format).
func Run(ctx context.Context, opts Options) (Result, error) {
	entries, warnings := Collect(ctx, opts)

	text, err := render.Render(entries, opts.Date, opts.Format)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Entries:  entries,
		Text:     text,
		Ext:      opts.Format.Ext(),
		Warnings: warnings,
	}, nil
}

// Collect runs every applicable source adapter and merges their output.
//
// Adapters are independent and side-effect-free on shared state, so they
// run concurrently. Results land in a slice indexed by adapter
// registration order and the merge sees that fixed order, so completion
// order never leaks into the output.
func Collect(ctx context.Context, opts Options) ([]report.Entry, []Warning) {
	sources, warnings := buildSources(opts)

	lists := make([][]report.Entry, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src source.Source) {
			defer wg.Done()
			lists[i], errs[i] = src.Collect(ctx, opts.Date)
		}(i, src)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			warnings = append(warnings, Warning{Source: sources[i].Name(), Err: err})
			lists[i] = nil
		}
	}

	return report.Merge(lists...), warnings
}

// buildSources resolves the adapter list in a fixed order: notes first
// (file, then manual), then git repos, then svn repos, with the
// working-change adapter following its repository's commit adapter.
func buildSources(opts Options) ([]source.Source, []Warning) {
	var sources []source.Source
	var warnings []Warning

	if opts.NotesFile != "" {
		lines, err := source.ReadNoteLines(opts.NotesFile)
		if err != nil {
			warnings = append(warnings, Warning{Source: "note:" + filepath.Base(opts.NotesFile), Err: err})
		} else {
			sources = append(sources, source.NewNotes(filepath.Base(opts.NotesFile), lines))
		}
	}
	if len(opts.ManualNotes) > 0 {
		sources = append(sources, source.NewNotes("manual", opts.ManualNotes))
	}

	for _, repo := range opts.GitRepos {
		sources = append(sources, withRunner(source.NewGitLog(repo, opts.Author), opts.Runner))
		if opts.IncludeWorking {
			sources = append(sources, withRunner(source.NewGitWorking(repo), opts.Runner))
		}
	}
	for _, repo := range opts.SvnRepos {
		sources = append(sources, withRunner(source.NewSvnLog(repo, opts.Author), opts.Runner))
		if opts.IncludeWorking {
			sources = append(sources, withRunner(source.NewSvnWorking(repo), opts.Runner))
		}
	}

	return sources, warnings
}

// withRunner installs the override runner when one is set.
func withRunner(src source.Source, r source.Runner) source.Source {
	if r == nil {
		return src
	}
	switch s := src.(type) {
	case *source.GitLog:
		s.Runner = r
	case *source.GitWorking:
		s.Runner = r
	case *source.SvnLog:
		s.Runner = r
	case *source.SvnWorking:
		s.Runner = r
	}
	return src
}
