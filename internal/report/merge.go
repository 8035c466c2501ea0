package report

import (
	"sort"
	"strings"
)

// Merge combines the entry lists produced by the source adapters into a
// single ordered sequence.
//
// Lists are concatenated in adapter order, deduplicated (first occurrence
// wins), then ordered: timed entries ascending by time, untimed entries
// after all timed ones in their original relative order. The sort is
// stable, so same-minute entries keep arrival order.
//
// Merge is a pure function: it performs no I/O and never mutates its
// inputs.
func Merge(lists ...[]Entry) []Entry {
	var all []Entry
	for _, list := range lists {
		all = append(all, list...)
	}

	all = dedup(all)

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		switch {
		case a.Timed && b.Timed:
			return a.Time.Before(b.Time)
		case a.Timed:
			// Timed entries sort before all untimed ones.
			return true
		default:
			return false
		}
	})

	return all
}

// dedup drops entries that repeat an earlier entry's identity.
//
// Two entries are duplicates when they share the source kind, the source
// qualifier, a case-insensitive normalized summary, and — when both are
// timed — the same minute. Including the qualifier means identical
// commits listed from differently-named repositories are kept as
// distinct work; a repository listed twice under the same name collapses.
func dedup(entries []Entry) []Entry {
	if len(entries) < 2 {
		return entries
	}
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		key := dedupKey(e)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

func dedupKey(e Entry) string {
	minute := ""
	if e.Timed {
		minute = e.Time.Format("15:04")
	}
	return strings.Join([]string{
		string(e.Source.Kind),
		e.Source.Qualifier,
		strings.ToLower(e.Summary),
		minute,
	}, "\x1f")
}
