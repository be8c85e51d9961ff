// Package loans provides loan amortization and payment calculations.
package loans

import (
	"math"

	"github.com/MohitJain0115/calc-suite/pkg/constants"
	"github.com/MohitJain0115/calc-suite/pkg/mathutil"
)

// Row holds the breakdown for a single monthly payment.
type Row struct {
	Month            int
	Payment          float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

// Schedule holds a complete amortization schedule.
type Schedule struct {
	MonthlyPayment float64
	Rows           []Row
	TotalPaid      float64
	TotalInterest  float64
}

// AutoQuote holds the computed payment terms for a vehicle loan.
type AutoQuote struct {
	FinancedAmount float64
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard annuity formula.
func CalculateMonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if principal <= 0 || annualRatePercent < 0 || termMonths <= 0 {
		return 0
	}

	if annualRatePercent == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	return principal * periodicRate * power / (power - 1.00)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingBalance, annualRatePercent float64) float64 {
	return remainingBalance * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Amortize produces the fixed monthly payment and the month-by-month
// principal/interest/balance breakdown for a loan. Degenerate inputs
// (non-positive principal or term, negative rate) yield a zero payment and an
// empty schedule rather than an error; callers must check for a zero payment
// before displaying results.
//
// Intermediate values are not rounded. Display rounding is left to the
// presentation layer, so row values carry full floating-point precision.
func Amortize(principal, annualRatePercent float64, termYears int) Schedule {
	var schedule Schedule

	if principal <= 0 || annualRatePercent < 0 || termYears <= 0 {
		return schedule
	}

	termMonths := termYears * constants.MonthsPerYear
	monthlyPayment := CalculateMonthlyPayment(principal, annualRatePercent, termMonths)
	schedule.MonthlyPayment = monthlyPayment
	schedule.Rows = make([]Row, 0, termMonths)

	balance := principal
	for month := 1; month <= termMonths; month++ {
		interest := CalculateInterestPayment(balance, annualRatePercent)
		principalPortion := monthlyPayment - interest
		balance -= principalPortion
		if balance < 0 || (month == termMonths && mathutil.Round(balance) == 0) {
			// Absorb floating-point drift on the final row.
			balance = 0
		}

		schedule.Rows = append(schedule.Rows, Row{
			Month:            month,
			Payment:          monthlyPayment,
			Principal:        principalPortion,
			Interest:         interest,
			RemainingBalance: balance,
		})

		schedule.TotalPaid += monthlyPayment
		schedule.TotalInterest += interest
	}

	return schedule
}

// AutoLoan computes the financed amount and monthly payment for a vehicle
// loan after applying a down payment and trade-in value. The same degenerate
// input policy as Amortize applies: a non-positive financed amount or term
// yields a zero-valued quote.
func AutoLoan(vehiclePrice, downPayment, tradeIn, annualRatePercent float64, termMonths int) AutoQuote {
	var quote AutoQuote

	financed := vehiclePrice - downPayment - tradeIn
	if financed <= 0 || annualRatePercent < 0 || termMonths <= 0 {
		return quote
	}

	quote.FinancedAmount = financed
	quote.MonthlyPayment = CalculateMonthlyPayment(financed, annualRatePercent, termMonths)
	quote.TotalPaid = quote.MonthlyPayment * float64(termMonths)
	quote.TotalInterest = quote.TotalPaid - financed

	return quote
}
