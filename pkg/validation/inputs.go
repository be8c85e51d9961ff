package validation

import (
	"fmt"
)

// ValidateLoanInput returns warnings for loan parameters that will produce a
// zero-valued schedule under the engines' silent-failure policy. Warnings are
// informational; the calculation still runs.
func ValidateLoanInput(name string, principal, annualRatePercent float64, termYears int) []string {
	var warnings []string

	if principal <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has non-positive principal %.2f - schedule will be empty", name, principal))
	}
	if annualRatePercent < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has negative interest rate %.2f - schedule will be empty", name, annualRatePercent))
	}
	if termYears <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has non-positive term %d - schedule will be empty", name, termYears))
	}

	return warnings
}

// ValidateSavingsInput returns warnings for savings parameters that will
// produce an empty projection.
func ValidateSavingsInput(name string, initial, monthlyContribution, annualRatePercent float64, years int) []string {
	var warnings []string

	if years <= 0 {
		warnings = append(warnings, fmt.Sprintf("Savings '%s' has non-positive duration %d years - projection will be empty", name, years))
	}
	if annualRatePercent < 0 {
		warnings = append(warnings, fmt.Sprintf("Savings '%s' has negative return rate %.2f - projection will be empty", name, annualRatePercent))
	}
	if initial < 0 || monthlyContribution < 0 {
		warnings = append(warnings, fmt.Sprintf("Savings '%s' has negative amounts - projection will be empty", name))
	}

	return warnings
}

// ValidateDurationValue returns warnings for date durations that collapse to
// a zero-length period.
func ValidateDurationValue(name string, value int) []string {
	if value <= 0 {
		return []string{fmt.Sprintf("'%s' has non-positive duration %d - period collapses to the start date", name, value)}
	}
	return nil
}
