// Package datetime provides date and time utility functions.
package datetime

import (
	"time"
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// EndOfMonth returns the last day of the month containing t, preserving the
// location of t.
func EndOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// OffsetMonthEnd returns the end of the month that is the given number of
// months after the month containing t. Stepping by whole months from the
// first of the month avoids the day-overflow behavior of AddDate on
// month-end dates (e.g. Jan 31 + 1 month).
func OffsetMonthEnd(t time.Time, months int) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return EndOfMonth(firstOfMonth.AddDate(0, months, 0))
}
