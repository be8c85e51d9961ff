// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"
	"strings"

	"github.com/MohitJain0115/calc-suite/internal/calc"
	"github.com/MohitJain0115/calc-suite/pkg/constants"
	"github.com/MohitJain0115/calc-suite/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable view of
// the results. The currency formatter carries the configured locale.
func PrettyFormat(results []calc.Result, currency *format.CurrencyFormatter) {
	if currency == nil {
		currency = format.NewCurrencyFormatter(constants.DefaultLocale, constants.DefaultCurrencySymbol)
	}

	for i, result := range results {
		if i > 0 {
			fmt.Printf("\n")
		}
		fmt.Printf("--- %s (%s) ---\n", result.Name, result.Kind)

		switch result.Kind {
		case calc.KindLoan:
			prettyLoan(result, currency)
		case calc.KindAutoLoan:
			prettyAutoLoan(result, currency)
		case calc.KindSavings:
			prettySavings(result, currency)
		case calc.KindNotice, calc.KindProbation:
			prettyNotice(result)
		case calc.KindAnniversary:
			prettyAnniversary(result)
		}

		for _, note := range result.Notes {
			fmt.Printf("note: %s\n", note)
		}
	}
}

func prettyLoan(result calc.Result, currency *format.CurrencyFormatter) {
	schedule := result.Loan
	if schedule == nil || len(schedule.Rows) == 0 {
		fmt.Printf("no schedule\n")
		return
	}

	fmt.Printf("Monthly payment: %s\n", currency.Currency(schedule.MonthlyPayment))
	fmt.Printf("Total paid: %s | Total interest: %s\n",
		currency.Currency(schedule.TotalPaid), currency.Currency(schedule.TotalInterest))
	fmt.Printf("Month | Principal     | Interest      | Balance\n")
	fmt.Printf("_____ | _____________ | _____________ | _____________\n")
	for _, row := range schedule.Rows {
		fmt.Printf("%5d | %13s | %13s | %13s\n",
			row.Month,
			currency.Currency(row.Principal),
			currency.Currency(row.Interest),
			currency.Currency(row.RemainingBalance))
	}
}

func prettyAutoLoan(result calc.Result, currency *format.CurrencyFormatter) {
	quote := result.Auto
	if quote == nil || quote.FinancedAmount == 0 {
		fmt.Printf("no quote\n")
		return
	}

	fmt.Printf("Financed amount: %s\n", currency.Currency(quote.FinancedAmount))
	fmt.Printf("Monthly payment: %s\n", currency.Currency(quote.MonthlyPayment))
	fmt.Printf("Total paid: %s | Total interest: %s\n",
		currency.Currency(quote.TotalPaid), currency.Currency(quote.TotalInterest))
}

func prettySavings(result calc.Result, currency *format.CurrencyFormatter) {
	projection := result.Savings
	if projection == nil || len(projection.Rows) == 0 {
		fmt.Printf("no projection\n")
		return
	}

	fmt.Printf("Final balance: %s\n", currency.Currency(projection.FinalBalance))
	fmt.Printf("Contributions: %s | Interest earned: %s\n",
		currency.Currency(projection.TotalContributions), currency.Currency(projection.TotalInterest))
	fmt.Printf("Year | Balance       | Contributions | Interest\n")
	fmt.Printf("____ | _____________ | _____________ | _____________\n")
	for _, row := range projection.Rows {
		fmt.Printf("%4d | %13s | %13s | %13s\n",
			row.Year,
			currency.Currency(row.EndBalance),
			currency.Currency(row.Contributions),
			currency.Currency(row.Interest))
	}
}

func prettyNotice(result calc.Result) {
	notice := result.Notice
	if notice == nil {
		fmt.Printf("no dates\n")
		return
	}

	fmt.Printf("Period end: %s\n", notice.PeriodEnd.Format(constants.DateLayout))
	fmt.Printf("Last working day: %s\n", notice.LastWorkingDay.Format(constants.DateLayout))
	fmt.Printf("Holidays observed: %d\n", notice.HolidaysObserved)
}

func prettyAnniversary(result calc.Result) {
	projection := result.Anniversary
	if projection == nil {
		fmt.Printf("no projection\n")
		return
	}

	fmt.Printf("Years of service: %d\n", projection.TotalYears)
	fmt.Printf("Next anniversary: %s (in %d days)\n",
		projection.Next.Date.Format(constants.DateLayout), projection.Next.DaysUntil)
	for _, m := range projection.Past {
		fmt.Printf("  year %2d: %s (%d days ago)\n", m.Year, m.Date.Format(constants.DateLayout), -m.DaysUntil)
	}
	for _, m := range projection.Upcoming {
		fmt.Printf("  year %2d: %s (in %d days)\n", m.Year, m.Date.Format(constants.DateLayout), m.DaysUntil)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []calc.Result) {
	fmt.Print(CsvString(results))
}

// CsvString renders the results in comma-separated value format as a string;
// used by the HTTP server to embed CSV in JSON responses.
func CsvString(results []calc.Result) string {
	var b strings.Builder

	b.WriteString(`"name","kind","field","value"` + "\n")
	for _, result := range results {
		writeCsvResult(&b, result)
	}

	return b.String()
}

func writeCsvResult(b *strings.Builder, result calc.Result) {
	row := func(field string, value interface{}) {
		fmt.Fprintf(b, `"%s","%s","%s","%v"`+"\n", result.Name, result.Kind, field, value)
	}

	switch result.Kind {
	case calc.KindLoan:
		if result.Loan == nil {
			return
		}
		row("monthlyPayment", fmt.Sprintf("%.2f", result.Loan.MonthlyPayment))
		row("totalPaid", fmt.Sprintf("%.2f", result.Loan.TotalPaid))
		row("totalInterest", fmt.Sprintf("%.2f", result.Loan.TotalInterest))
		for _, r := range result.Loan.Rows {
			row(fmt.Sprintf("month %d", r.Month),
				fmt.Sprintf("%.2f,%.2f,%.2f", r.Principal, r.Interest, r.RemainingBalance))
		}
	case calc.KindAutoLoan:
		if result.Auto == nil {
			return
		}
		row("financedAmount", fmt.Sprintf("%.2f", result.Auto.FinancedAmount))
		row("monthlyPayment", fmt.Sprintf("%.2f", result.Auto.MonthlyPayment))
		row("totalInterest", fmt.Sprintf("%.2f", result.Auto.TotalInterest))
	case calc.KindSavings:
		if result.Savings == nil {
			return
		}
		row("finalBalance", fmt.Sprintf("%.2f", result.Savings.FinalBalance))
		row("totalContributions", fmt.Sprintf("%.2f", result.Savings.TotalContributions))
		row("totalInterest", fmt.Sprintf("%.2f", result.Savings.TotalInterest))
		for _, r := range result.Savings.Rows {
			row(fmt.Sprintf("year %d", r.Year), fmt.Sprintf("%.2f", r.EndBalance))
		}
	case calc.KindNotice, calc.KindProbation:
		if result.Notice == nil {
			return
		}
		row("periodEnd", result.Notice.PeriodEnd.Format(constants.DateLayout))
		row("lastWorkingDay", result.Notice.LastWorkingDay.Format(constants.DateLayout))
		row("holidaysObserved", result.Notice.HolidaysObserved)
	case calc.KindAnniversary:
		if result.Anniversary == nil {
			return
		}
		row("totalYears", result.Anniversary.TotalYears)
		row("nextAnniversary", result.Anniversary.Next.Date.Format(constants.DateLayout))
		row("daysUntilNext", result.Anniversary.Next.DaysUntil)
	}
}
