// Package constants provides shared constants for the calc-suite application.
package constants

// DateLayout is the format expected for dates in config files and API
// payloads and is also the output date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Date engine constants
const (
	// DaysPerWeek is the number of calendar days in a week
	DaysPerWeek = 7

	// AnniversaryWindow is the number of past and upcoming anniversaries reported
	AnniversaryWindow = 5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Locale defaults
const (
	// DefaultLocale is the default language tag for number formatting
	DefaultLocale = "en"

	// DefaultCurrencySymbol is the default currency symbol for display output
	DefaultCurrencySymbol = "$"
)
