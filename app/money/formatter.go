// Package money formats currency amounts for display.
package money

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	unit    currency.Unit
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a formatter for an ISO currency code. When symbol is
// empty the ISO code followed by a space is used as prefix.
func NewFormatter(code, symbol, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	if symbol == "" {
		symbol = unit.String() + " "
	}

	return &Formatter{
		unit:    unit,
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}, nil
}

// Naira is the formatter used by the site when nothing else is configured.
func Naira() *Formatter {
	f, err := NewFormatter("NGN", "₦", "en")
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Format renders amount with localized thousand separators. Whole amounts
// drop the fraction, anything else keeps two decimals.
func (f *Formatter) Format(amount float64) string {
	return f.symbol + f.Number(amount)
}

func (f *Formatter) Number(amount float64) string {
	if amount == math.Trunc(amount) {
		return f.printer.Sprintf("%d", int64(amount))
	}
	return f.printer.Sprintf("%.2f", amount)
}

// Compact renders large amounts in millions, e.g. ₦15.7M.
func (f *Formatter) Compact(amount float64) string {
	if math.Abs(amount) < 1_000_000 {
		return f.Format(amount)
	}
	return f.symbol + f.printer.Sprintf("%.1fM", amount/1_000_000)
}
