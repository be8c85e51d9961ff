// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/MohitJain0115/calc-suite/pkg/constants"
)

const (
	// DateLayout is the format expected in config files and API payloads and
	// is also the output date format.
	DateLayout = constants.DateLayout
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

// ParseDate parses an ISO-8601 calendar date and normalizes it to midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return Truncate(t), nil
}

// Truncate strips the time-of-day and location from a date so that two dates
// compare equal when they fall on the same calendar day.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two dates fall on the same calendar day regardless
// of time-of-day.
func SameDay(a, b time.Time) bool {
	return Truncate(a).Equal(Truncate(b))
}

// IsWeekend reports whether a date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// DateBeforeDate returns true if firstDate is strictly before secondDate by
// calendar day.
func DateBeforeDate(firstDate, secondDate time.Time) bool {
	return Truncate(firstDate).Before(Truncate(secondDate))
}

// DaysBetween returns the number of whole calendar days from firstDate to
// secondDate; negative when secondDate precedes firstDate.
func DaysBetween(firstDate, secondDate time.Time) int {
	return int(Truncate(secondDate).Sub(Truncate(firstDate)).Hours() / 24)
}
