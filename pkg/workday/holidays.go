package workday

import (
	"fmt"
	"strings"
	"time"

	"github.com/MohitJain0115/calc-suite/pkg/datetime"
)

// HolidaySet is a set of calendar dates. Membership is tested by calendar-day
// equality regardless of time-of-day.
type HolidaySet map[time.Time]struct{}

// NewHolidaySet builds a set from already-parsed dates.
func NewHolidaySet(dates ...time.Time) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, date := range dates {
		set[datetime.Truncate(date)] = struct{}{}
	}
	return set
}

// ParseHolidays parses a comma-separated list of ISO-8601 dates into a
// HolidaySet. Entries are trimmed and empty entries are discarded. Malformed
// entries are skipped rather than propagated; each one produces a warning
// string so callers can surface them without failing the calculation.
func ParseHolidays(list string) (HolidaySet, []string) {
	set := make(HolidaySet)
	var warnings []string

	for _, entry := range strings.Split(list, ",") {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		date, err := datetime.ParseDate(trimmed)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping unparseable holiday date '%s'", trimmed))
			continue
		}
		set[date] = struct{}{}
	}

	return set, warnings
}

// Contains reports whether the given date is a holiday.
func (h HolidaySet) Contains(date time.Time) bool {
	if h == nil {
		return false
	}
	_, ok := h[datetime.Truncate(date)]
	return ok
}

// CountBetween counts holidays strictly after the first date and on/before
// the second date.
func (h HolidaySet) CountBetween(after, onOrBefore time.Time) int {
	start := datetime.Truncate(after)
	end := datetime.Truncate(onOrBefore)

	count := 0
	for holiday := range h {
		if holiday.After(start) && !holiday.After(end) {
			count++
		}
	}
	return count
}
