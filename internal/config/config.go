// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/viper"

	"github.com/MohitJain0115/calc-suite/pkg/constants"
	"github.com/MohitJain0115/calc-suite/pkg/datetime"
	"github.com/MohitJain0115/calc-suite/pkg/validation"
	"github.com/MohitJain0115/calc-suite/pkg/workday"
)

// DateLayout is the format expected for dates in config files and is also
// the output date format.
const DateLayout = constants.DateLayout

// Configuration holds all configuration for calc-suite.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Locale  LocaleConfig  `yaml:"locale,omitempty"`

	// Holidays is a comma-separated list of ISO-8601 dates applied to all
	// date calculations.
	Holidays string `yaml:"holidays,omitempty"`

	Loans         []LoanSpec        `yaml:"loans,omitempty"`
	AutoLoans     []AutoLoanSpec    `yaml:"autoLoans,omitempty"`
	Savings       []SavingsSpec     `yaml:"savings,omitempty"`
	Notices       []NoticeSpec      `yaml:"notices,omitempty"`
	Probations    []ProbationSpec   `yaml:"probations,omitempty"`
	Anniversaries []AnniversarySpec `yaml:"anniversaries,omitempty"`

	holidaySet workday.HolidaySet
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LocaleConfig holds display formatting options. It is injected into the
// formatting layer rather than read from process-wide state.
type LocaleConfig struct {
	Language       string `yaml:"language,omitempty"`       // BCP 47 tag, e.g. "en"
	CurrencySymbol string `yaml:"currencySymbol,omitempty"` // e.g. "$"
}

// LoanSpec describes one amortization calculation request.
type LoanSpec struct {
	Name       string  `yaml:"name"`
	Principal  float64 `yaml:"principal"`
	AnnualRate float64 `yaml:"annualRate"` // percent
	TermYears  int     `yaml:"termYears"`
}

// AutoLoanSpec describes one vehicle loan calculation request.
type AutoLoanSpec struct {
	Name         string  `yaml:"name"`
	VehiclePrice float64 `yaml:"vehiclePrice"`
	DownPayment  float64 `yaml:"downPayment"`
	TradeIn      float64 `yaml:"tradeIn"`
	AnnualRate   float64 `yaml:"annualRate"` // percent
	TermMonths   int     `yaml:"termMonths"`
}

// SavingsSpec describes one savings growth calculation request.
type SavingsSpec struct {
	Name                string  `yaml:"name"`
	Initial             float64 `yaml:"initial"`
	MonthlyContribution float64 `yaml:"monthlyContribution"`
	AnnualRate          float64 `yaml:"annualRate"` // percent
	Years               int     `yaml:"years"`
}

// NoticeSpec describes one notice-period calculation request.
type NoticeSpec struct {
	Name            string `yaml:"name"`
	ResignationDate string `yaml:"resignationDate"`
	Duration        int    `yaml:"duration"`
	Unit            string `yaml:"unit"` // days, weeks, months

	ResignationDateT time.Time        `yaml:"-"`
	DurationParsed   workday.Duration `yaml:"-"`
}

// ProbationSpec describes one probation end-date calculation request.
type ProbationSpec struct {
	Name      string `yaml:"name"`
	StartDate string `yaml:"startDate"`
	Duration  int    `yaml:"duration"`
	Unit      string `yaml:"unit"` // days, weeks, months

	StartDateT     time.Time        `yaml:"-"`
	DurationParsed workday.Duration `yaml:"-"`
}

// AnniversarySpec describes one anniversary projection request.
type AnniversarySpec struct {
	Name     string `yaml:"name"`
	HireDate string `yaml:"hireDate"`
	Today    string `yaml:"today,omitempty"` // optional reference date override

	HireDateT time.Time `yaml:"-"`
	TodayT    time.Time `yaml:"-"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader; used by the HTTP server for request payloads.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ParseHolidays parses the configured holiday list into a HolidaySet.
// Malformed entries are reported as warnings, not errors.
func (conf *Configuration) ParseHolidays() []string {
	set, warnings := workday.ParseHolidays(conf.Holidays)
	conf.holidaySet = set
	return warnings
}

// HolidaySet returns the parsed holiday set; ParseHolidays must run first.
func (conf *Configuration) HolidaySet() workday.HolidaySet {
	return conf.holidaySet
}

// ParseDates parses every date string in the configuration into a time.Time
// stored alongside it, using the current time for unspecified reference
// dates.
func (conf *Configuration) ParseDates() error {
	return conf.ParseDatesWithFixedTime(time.Now())
}

// ParseDatesWithFixedTime parses all dates in the configuration using a
// fixed reference time for unspecified "today" fields; used by tests.
func (conf *Configuration) ParseDatesWithFixedTime(fixedTime time.Time) error {
	for i := range conf.Notices {
		spec := &conf.Notices[i]
		date, err := datetime.ParseDate(spec.ResignationDate)
		if err != nil {
			return fmt.Errorf("notice '%s': invalid resignation date %q: %w", spec.Name, spec.ResignationDate, err)
		}
		unit, err := workday.ParseUnit(spec.Unit)
		if err != nil {
			return fmt.Errorf("notice '%s': %w", spec.Name, err)
		}
		spec.ResignationDateT = date
		spec.DurationParsed = workday.Duration{Value: spec.Duration, Unit: unit}
	}

	for i := range conf.Probations {
		spec := &conf.Probations[i]
		date, err := datetime.ParseDate(spec.StartDate)
		if err != nil {
			return fmt.Errorf("probation '%s': invalid start date %q: %w", spec.Name, spec.StartDate, err)
		}
		unit, err := workday.ParseUnit(spec.Unit)
		if err != nil {
			return fmt.Errorf("probation '%s': %w", spec.Name, err)
		}
		spec.StartDateT = date
		spec.DurationParsed = workday.Duration{Value: spec.Duration, Unit: unit}
	}

	for i := range conf.Anniversaries {
		spec := &conf.Anniversaries[i]
		date, err := datetime.ParseDate(spec.HireDate)
		if err != nil {
			return fmt.Errorf("anniversary '%s': invalid hire date %q: %w", spec.Name, spec.HireDate, err)
		}
		spec.HireDateT = date

		if spec.Today == "" {
			spec.TodayT = datetime.Truncate(fixedTime)
			continue
		}
		today, err := datetime.ParseDate(spec.Today)
		if err != nil {
			return fmt.Errorf("anniversary '%s': invalid reference date %q: %w", spec.Name, spec.Today, err)
		}
		spec.TodayT = today
	}

	return nil
}

// ValidateConfiguration checks for inputs that will produce zero-valued
// results and returns human-readable warnings. The calculation still runs;
// engines handle degenerate inputs by returning empty results.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	for _, loan := range conf.Loans {
		warnings = append(warnings, validation.ValidateLoanInput(loan.Name, loan.Principal, loan.AnnualRate, loan.TermYears)...)
	}
	for _, auto := range conf.AutoLoans {
		financed := auto.VehiclePrice - auto.DownPayment - auto.TradeIn
		if financed <= 0 {
			warnings = append(warnings, fmt.Sprintf("Auto loan '%s' has nothing to finance - quote will be empty", auto.Name))
		}
	}
	for _, s := range conf.Savings {
		warnings = append(warnings, validation.ValidateSavingsInput(s.Name, s.Initial, s.MonthlyContribution, s.AnnualRate, s.Years)...)
	}
	for _, notice := range conf.Notices {
		warnings = append(warnings, validation.ValidateDurationValue(fmt.Sprintf("Notice '%s'", notice.Name), notice.Duration)...)
	}
	for _, probation := range conf.Probations {
		warnings = append(warnings, validation.ValidateDurationValue(fmt.Sprintf("Probation '%s'", probation.Name), probation.Duration)...)
	}

	return warnings
}
