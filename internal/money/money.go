// Package money formats monetary amounts for display on receipts and
// reports. Amounts are shown without decimals, grouped in thousands with
// a period separator and suffixed with the currency label, e.g.
// "12.500 FCFA".
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the label used when none is configured.
const DefaultCurrency = "FCFA"

var printer = message.NewPrinter(language.French)

// Formatter renders decimal amounts with a fixed currency label.
type Formatter struct {
	currency string
}

// NewFormatter returns a Formatter for the given currency label.
func NewFormatter(currency string) Formatter {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Formatter{currency: currency}
}

// Currency returns the configured currency label.
func (f Formatter) Currency() string {
	if f.currency == "" {
		return DefaultCurrency
	}
	return f.currency
}

// Format renders an amount rounded to the unit, grouped in thousands
// with a period and suffixed with the currency label. The underlying
// locale groups with a space variant, normalized here to a period.
func (f Formatter) Format(amount decimal.Decimal) string {
	grouped := printer.Sprintf("%d", amount.Round(0).IntPart())
	grouped = strings.Map(normalizeSeparator, grouped)
	return grouped + " " + f.Currency()
}

func normalizeSeparator(r rune) rune {
	switch r {
	case ' ', ' ', ' ':
		return '.'
	}
	return r
}
