package render

import (
	"encoding/json"
	"time"

	"github.com/xolan/dayreport/internal/report"
)

// jsonEntry is the serialized shape of one entry. Time is "HH:MM" or
// null when unknown.
type jsonEntry struct {
	Time    *string `json:"time"`
	Source  string  `json:"source"`
	Summary string  `json:"summary"`
}

// jsonReport is the serialized-object rendering: a single object with the
// date and the ordered entry list.
type jsonReport struct {
	Date    string      `json:"date"`
	Entries []jsonEntry `json:"entries"`
}

func renderJSON(entries []report.Entry, date time.Time) string {
	out := jsonReport{
		Date:    dateLabel(date),
		Entries: make([]jsonEntry, 0, len(entries)),
	}
	for _, e := range entries {
		je := jsonEntry{Source: e.Source.String(), Summary: e.Summary}
		if e.Timed {
			label := e.TimeLabel()
			je.Time = &label
		}
		out.Entries = append(out.Entries, je)
	}

	// Marshaling a struct of strings cannot fail.
	data, _ := json.MarshalIndent(out, "", "  ")
	return string(data) + "\n"
}
