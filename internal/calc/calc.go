// Package calc evaluates every calculation request in a configuration
// through the pure engines and collects the results.
package calc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/MohitJain0115/calc-suite/internal/config"
	"github.com/MohitJain0115/calc-suite/pkg/anniversary"
	"github.com/MohitJain0115/calc-suite/pkg/loans"
	"github.com/MohitJain0115/calc-suite/pkg/savings"
	"github.com/MohitJain0115/calc-suite/pkg/workday"
)

// Kind identifies which calculator produced a Result.
type Kind string

const (
	KindLoan        Kind = "loan"
	KindAutoLoan    Kind = "autoLoan"
	KindSavings     Kind = "savings"
	KindNotice      Kind = "notice"
	KindProbation   Kind = "probation"
	KindAnniversary Kind = "anniversary"
)

// Result holds the output of one calculation request. Exactly one of the
// payload fields is set, matching Kind.
type Result struct {
	Name  string
	Kind  Kind
	Notes []string

	Loan        *loans.Schedule
	Auto        *loans.AutoQuote
	Savings     *savings.Projection
	Notice      *workday.Notice
	Anniversary *anniversary.Projection
}

// Run evaluates all configured calculations. This is the single recompute
// entry point: callers re-invoke it after any input change rather than
// maintaining incremental state. Dates and holidays must already be parsed
// on the configuration.
func Run(logger *zap.Logger, conf *config.Configuration) []Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	holidays := conf.HolidaySet()
	results := make([]Result, 0,
		len(conf.Loans)+len(conf.AutoLoans)+len(conf.Savings)+
			len(conf.Notices)+len(conf.Probations)+len(conf.Anniversaries))

	for _, spec := range conf.Loans {
		schedule := loans.Amortize(spec.Principal, spec.AnnualRate, spec.TermYears)
		result := Result{Name: spec.Name, Kind: KindLoan, Loan: &schedule}
		if schedule.MonthlyPayment == 0 {
			result.Notes = append(result.Notes, "inputs produced an empty schedule")
		}
		logger.Debug(fmt.Sprintf("amortized loan %s: %d rows", spec.Name, len(schedule.Rows)),
			zap.String("op", "calc.Run"),
		)
		results = append(results, result)
	}

	for _, spec := range conf.AutoLoans {
		quote := loans.AutoLoan(spec.VehiclePrice, spec.DownPayment, spec.TradeIn, spec.AnnualRate, spec.TermMonths)
		result := Result{Name: spec.Name, Kind: KindAutoLoan, Auto: &quote}
		if quote.MonthlyPayment == 0 {
			result.Notes = append(result.Notes, "inputs produced an empty quote")
		}
		results = append(results, result)
	}

	for _, spec := range conf.Savings {
		projection := savings.Project(spec.Initial, spec.MonthlyContribution, spec.AnnualRate, spec.Years)
		result := Result{Name: spec.Name, Kind: KindSavings, Savings: &projection}
		if len(projection.Rows) == 0 {
			result.Notes = append(result.Notes, "inputs produced an empty projection")
		}
		results = append(results, result)
	}

	for _, spec := range conf.Notices {
		notice := workday.LastWorkingDay(spec.ResignationDateT, spec.DurationParsed, holidays)
		result := Result{Name: spec.Name, Kind: KindNotice, Notice: &notice}
		if notice.HolidaysObserved > 0 {
			result.Notes = append(result.Notes,
				fmt.Sprintf("%d holiday(s) observed during the notice period", notice.HolidaysObserved))
		}
		logger.Debug(fmt.Sprintf("notice %s ends %s, last working day %s",
			spec.Name,
			notice.PeriodEnd.Format(config.DateLayout),
			notice.LastWorkingDay.Format(config.DateLayout)),
			zap.String("op", "calc.Run"),
		)
		results = append(results, result)
	}

	for _, spec := range conf.Probations {
		probation := workday.ProbationEnd(spec.StartDateT, spec.DurationParsed, holidays)
		results = append(results, Result{Name: spec.Name, Kind: KindProbation, Notice: &probation})
	}

	for _, spec := range conf.Anniversaries {
		projection := anniversary.Project(spec.HireDateT, spec.TodayT)
		results = append(results, Result{Name: spec.Name, Kind: KindAnniversary, Anniversary: &projection})
	}

	return results
}
