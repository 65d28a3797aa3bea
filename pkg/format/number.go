package format

import (
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/invoicekit/pkg/locale"
)

// FormatNumber renders value with the grouping and decimal separators of locale.
//
// Negative digit bounds fall back to DefaultFractionDigits; a minimum above
// the maximum is clamped to the maximum. Rounding is done by
// golang.org/x/text/number, which rounds half to even on the decimal value.
//
// Example:
//
//	format.FormatNumber(1250, "en-US", 2, 2) // "1,250.00"
//	format.FormatNumber(1250, "nb-NO", 2, 2) // "1 250,00" (no-break space)
func FormatNumber(value float64, loc string, minDigits, maxDigits int) string {
	if minDigits < 0 {
		minDigits = DefaultFractionDigits
	}
	if maxDigits < 0 {
		maxDigits = DefaultFractionDigits
	}
	if minDigits > maxDigits {
		minDigits = maxDigits
	}

	p := message.NewPrinter(locale.Tag(loc))
	return p.Sprintf("%v", number.Decimal(value,
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	))
}

// FormatNumberDefault formats value with two fixed fraction digits.
func FormatNumberDefault(value float64, loc string) string {
	return FormatNumber(value, loc, DefaultFractionDigits, DefaultFractionDigits)
}

// FormatPercent renders a rate given in percent points ("25" -> "25%"),
// trimming to at most two fraction digits.
func FormatPercent(value float64, loc string) string {
	return FormatNumber(value, loc, 0, 2) + "%"
}
