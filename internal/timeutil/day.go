// Package timeutil provides date parsing and day-bound helpers used to
// scope collection to a single report day.
package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format.
// Returns the parsed date at midnight (start of day) in local timezone.
// For ambiguous dates (like 05/06/2024), ISO format (YYYY-MM-DD) is preferred.
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)")
	}

	// Try ISO format first (YYYY-MM-DD) - preferred for ambiguous dates
	t, err := time.ParseInLocation("2006-01-02", input, time.Local)
	if err == nil {
		return StartOfDay(t), nil
	}

	// Try European format (DD/MM/YYYY)
	t, err = time.ParseInLocation("02/01/2006", input, time.Local)
	if err == nil {
		return StartOfDay(t), nil
	}

	return time.Time{}, buildDateParseError(input)
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	yearOnlyRe := regexp.MustCompile(`^\d{4}$`)           // YYYY (year only)
	isoPartialRe := regexp.MustCompile(`^\d{4}-\d{1,2}$`) // YYYY-MM (missing day)

	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", input)
	}
}

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// Today returns midnight of the current day in local time.
func Today() time.Time {
	return StartOfDay(time.Now())
}

// IsInRange checks if the given time t falls within the range [start, end] (inclusive)
func IsInRange(t, start, end time.Time) bool {
	return (t.Equal(start) || t.After(start)) && (t.Equal(end) || t.Before(end))
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
