// Package savings provides compound-growth projections for savings accounts.
package savings

import (
	"github.com/MohitJain0115/calc-suite/pkg/constants"
)

// YearRow captures the account state at the end of a projection year.
type YearRow struct {
	Year          int
	EndBalance    float64
	Contributions float64
	Interest      float64
}

// Projection holds the result of a savings growth computation.
type Projection struct {
	FinalBalance       float64
	TotalContributions float64
	TotalInterest      float64
	Rows               []YearRow
}

// Project computes monthly-compounded growth of an initial balance with a
// fixed monthly contribution over the given number of years. Each month the
// balance grows by one month of interest and then receives the contribution.
// Degenerate inputs (non-positive years, negative rate or amounts) yield a
// zero-valued projection with no rows, matching the silent-failure policy of
// the other engines.
func Project(initial, monthlyContribution, annualRatePercent float64, years int) Projection {
	var projection Projection

	if years <= 0 || annualRatePercent < 0 || initial < 0 || monthlyContribution < 0 {
		return projection
	}

	monthlyRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	balance := initial
	contributions := initial
	var interest float64

	projection.Rows = make([]YearRow, 0, years)
	for year := 1; year <= years; year++ {
		for month := 0; month < constants.MonthsPerYear; month++ {
			growth := balance * monthlyRate
			balance += growth + monthlyContribution
			interest += growth
			contributions += monthlyContribution
		}
		projection.Rows = append(projection.Rows, YearRow{
			Year:          year,
			EndBalance:    balance,
			Contributions: contributions,
			Interest:      interest,
		})
	}

	projection.FinalBalance = balance
	projection.TotalContributions = contributions
	projection.TotalInterest = interest

	return projection
}
