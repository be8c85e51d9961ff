// Package workday implements business-day date arithmetic for notice periods
// and probation end dates. A working day is a calendar day that is not a
// Saturday, Sunday, or designated holiday.
package workday

import (
	"fmt"
	"time"

	"github.com/MohitJain0115/calc-suite/pkg/constants"
	"github.com/MohitJain0115/calc-suite/pkg/datetime"
)

// Unit is the unit of a date duration.
type Unit string

const (
	UnitDays   Unit = "days"
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
)

// ParseUnit converts a string into a Unit.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitDays, UnitWeeks, UnitMonths:
		return Unit(s), nil
	default:
		return "", fmt.Errorf("unsupported duration unit %q", s)
	}
}

// Duration is an integer amount of days, weeks, or months. When the unit is
// days the amount is interpreted as working days, not calendar days.
type Duration struct {
	Value int
	Unit  Unit
}

// Notice holds the computed dates for a notice period.
type Notice struct {
	// PeriodEnd is the nominal end of the notice period.
	PeriodEnd time.Time

	// LastWorkingDay is the final working day, never a weekend or holiday.
	// For week and month durations it can precede PeriodEnd when the period
	// ends on a non-working day.
	LastWorkingDay time.Time

	// HolidaysObserved counts holidays strictly after the resignation date
	// and on/before LastWorkingDay.
	HolidaysObserved int
}

// IsWorkingDay reports whether a date is neither a weekend nor a holiday.
func IsWorkingDay(date time.Time, holidays HolidaySet) bool {
	return !datetime.IsWeekend(date) && !holidays.Contains(date)
}

// LastWorkingDay computes the notice-period end date and the final working
// day for a resignation tendered on resignationDate.
//
// A duration in days counts working days: the walk advances one calendar day
// at a time and only days that are neither weekend nor holiday count toward
// the total, so the period always ends on a working day. Durations in weeks
// or months add calendar time directly and then step back one day to land on
// the period's last calendar day; that day may be a weekend or holiday, in
// which case the reported last working day precedes the nominal period end.
func LastWorkingDay(resignationDate time.Time, d Duration, holidays HolidaySet) Notice {
	start := datetime.Truncate(resignationDate)

	if d.Value <= 0 {
		// Zero-length notice: the period collapses onto the resignation date.
		lastWorking := start
		for !IsWorkingDay(lastWorking, holidays) {
			lastWorking = lastWorking.AddDate(0, 0, -1)
		}
		return Notice{PeriodEnd: start, LastWorkingDay: lastWorking}
	}

	var periodEnd time.Time
	switch d.Unit {
	case UnitDays:
		periodEnd = addWorkingDays(start, d.Value, holidays)
	case UnitWeeks:
		periodEnd = start.AddDate(0, 0, d.Value*constants.DaysPerWeek-1)
	default:
		periodEnd = start.AddDate(0, d.Value, -1)
	}

	// The days branch lands on a working day by construction, so this loop
	// is a no-op there.
	lastWorking := periodEnd
	for !IsWorkingDay(lastWorking, holidays) {
		lastWorking = lastWorking.AddDate(0, 0, -1)
	}

	return Notice{
		PeriodEnd:        periodEnd,
		LastWorkingDay:   lastWorking,
		HolidaysObserved: holidays.CountBetween(start, lastWorking),
	}
}

// ProbationEnd computes the nominal probation end date and the last working
// day on or before it, using the same duration semantics as LastWorkingDay.
func ProbationEnd(startDate time.Time, d Duration, holidays HolidaySet) Notice {
	return LastWorkingDay(startDate, d, holidays)
}

// addWorkingDays walks forward one calendar day at a time from start,
// counting only working days, until count working days have elapsed.
func addWorkingDays(start time.Time, count int, holidays HolidaySet) time.Time {
	date := start
	for counted := 0; counted < count; {
		date = date.AddDate(0, 0, 1)
		if IsWorkingDay(date, holidays) {
			counted++
		}
	}
	return date
}
