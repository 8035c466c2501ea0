// Package source converts raw activity origins (version-control history,
// uncommitted working changes, manual notes) into report entries.
package source

import (
	"context"
	"path/filepath"
	"time"

	"github.com/xolan/dayreport/internal/report"
)

// Source collects the entries one origin contributed to a single day.
//
// Implementations fail soft: a broken repository or missing external tool
// returns an error that the pipeline surfaces as a warning, never as a
// pipeline abort. A Source holds no state across invocations.
type Source interface {
	// Name identifies the source in warnings, e.g. "git:myrepo".
	Name() string
	// Collect returns the entries for the given day (midnight, local time).
	Collect(ctx context.Context, day time.Time) ([]report.Entry, error)
}

// repoName returns the display name for a repository path.
func repoName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.Base(abs)
}
