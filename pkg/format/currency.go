// Package format provides locale-aware currency and number formatting for
// display output. The locale is injected via configuration rather than read
// from process-wide state.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MohitJain0115/calc-suite/pkg/constants"
)

// CurrencyFormatter renders currency strings for a configured locale and
// symbol.
type CurrencyFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewCurrencyFormatter builds a formatter for the given language tag and
// currency symbol. Unknown tags and an empty symbol fall back to the
// defaults.
func NewCurrencyFormatter(localeTag, symbol string) *CurrencyFormatter {
	tag, err := language.Parse(localeTag)
	if err != nil {
		tag = language.Make(constants.DefaultLocale)
	}
	if symbol == "" {
		symbol = constants.DefaultCurrencySymbol
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Currency returns a currency string with the configured symbol and
// locale-appropriate separators (e.g., "-$1,234.56").
func (f *CurrencyFormatter) Currency(amount float64) string {
	if amount < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%.2f", -amount)
	}
	return f.symbol + f.printer.Sprintf("%.2f", amount)
}

// Numeric returns a currency string without a symbol but with separators
// (e.g., "-1,234.56").
func (f *CurrencyFormatter) Numeric(amount float64) string {
	return f.printer.Sprintf("%.2f", amount)
}
