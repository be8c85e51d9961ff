// Package anniversary projects hire-date anniversaries around a reference
// date.
package anniversary

import (
	"time"

	"github.com/MohitJain0115/calc-suite/pkg/constants"
	"github.com/MohitJain0115/calc-suite/pkg/datetime"
)

// Milestone is a single service anniversary with its day offset from the
// reference date.
type Milestone struct {
	Year int
	Date time.Time

	// DaysUntil is negative for past anniversaries (days ago) and
	// non-negative for upcoming ones.
	DaysUntil int
}

// Projection holds the anniversaries surrounding the reference date.
type Projection struct {
	HireDate   time.Time
	Today      time.Time
	TotalYears int

	// Next is the first anniversary after today; always Upcoming[0].
	Next Milestone

	// Past holds up to the five most recent completed anniversaries,
	// ordered oldest to most recent.
	Past []Milestone

	// Upcoming holds the next five anniversaries in chronological order.
	Upcoming []Milestone
}

// Project computes completed years of service and the surrounding
// anniversaries for a hire date as of today. A hire date in the future yields
// zero completed years with the first anniversaries still enumerated from
// year one.
func Project(hireDate, today time.Time) Projection {
	hire := datetime.Truncate(hireDate)
	ref := datetime.Truncate(today)

	projection := Projection{
		HireDate:   hire,
		Today:      ref,
		TotalYears: completedYears(hire, ref),
	}

	for year := projection.TotalYears; year > 0 && len(projection.Past) < constants.AnniversaryWindow; year-- {
		projection.Past = append(projection.Past, milestone(year, hire.AddDate(year, 0, 0), ref))
	}
	reverse(projection.Past)

	for i := 1; i <= constants.AnniversaryWindow; i++ {
		year := projection.TotalYears + i
		anniversary := hire.AddDate(year, 0, 0)
		projection.Upcoming = append(projection.Upcoming, milestone(year, anniversary, ref))
	}
	projection.Next = projection.Upcoming[0]

	return projection
}

func milestone(year int, date, ref time.Time) Milestone {
	return Milestone{
		Year:      year,
		Date:      date,
		DaysUntil: datetime.DaysBetween(ref, date),
	}
}

// completedYears returns the number of full years elapsed between hire and
// ref, floored; never negative.
func completedYears(hire, ref time.Time) int {
	if !hire.Before(ref) {
		return 0
	}

	years := ref.Year() - hire.Year()
	if hire.AddDate(years, 0, 0).After(ref) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func reverse(milestones []Milestone) {
	for i, j := 0, len(milestones)-1; i < j; i, j = i+1, j-1 {
		milestones[i], milestones[j] = milestones[j], milestones[i]
	}
}
