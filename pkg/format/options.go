package format

import "strings"

// DefaultFractionDigits is used for both bounds when a caller passes a negative value.
const DefaultFractionDigits = 2

// DisplayMode selects how FormatMoney renders the currency.
type DisplayMode string

const (
	// DisplayCode prefixes the ISO code: "EUR 1,250.00". Default for documents.
	DisplayCode DisplayMode = "code"
	// DisplaySymbol uses the locale-native symbol and placement: "€1,250.00".
	DisplaySymbol DisplayMode = "symbol"
	// DisplayName spells out the currency: "1,250.00 euros".
	DisplayName DisplayMode = "name"
)

// ParseDisplayMode maps a string to a DisplayMode, falling back to DisplayCode.
func ParseDisplayMode(s string) DisplayMode {
	switch DisplayMode(strings.ToLower(strings.TrimSpace(s))) {
	case DisplaySymbol:
		return DisplaySymbol
	case DisplayName:
		return DisplayName
	default:
		return DisplayCode
	}
}

// DateStyle selects the calendar layout used by FormatDate.
type DateStyle string

const (
	DateShort  DateStyle = "short"
	DateMedium DateStyle = "medium"
	DateLong   DateStyle = "long"
	DateFull   DateStyle = "full"
)

// ParseDateStyle maps a string to a DateStyle, falling back to DateShort.
func ParseDateStyle(s string) DateStyle {
	switch DateStyle(strings.ToLower(strings.TrimSpace(s))) {
	case DateMedium:
		return DateMedium
	case DateLong:
		return DateLong
	case DateFull:
		return DateFull
	default:
		return DateShort
	}
}

// Options bundles display configuration for a document.
// The zero value means: no currency, code display, short dates, two fraction digits.
type Options struct {
	Currency          string
	Display           DisplayMode
	DateStyle         DateStyle
	MinFractionDigits int
	MaxFractionDigits int
}

// DefaultOptions returns Options with the documented defaults for the given currency.
func DefaultOptions(currency string) Options {
	return Options{
		Currency:          currency,
		Display:           DisplayCode,
		DateStyle:         DateShort,
		MinFractionDigits: DefaultFractionDigits,
		MaxFractionDigits: DefaultFractionDigits,
	}
}

// Formatter binds Options to a locale so callers can format a whole
// document without repeating arguments. It holds no mutable state.
type Formatter struct {
	Locale  string
	Options Options
}

// New returns a Formatter for locale with opts.
func New(locale string, opts Options) Formatter {
	return Formatter{Locale: locale, Options: opts}
}

// Number formats value with the configured fraction digits.
func (f Formatter) Number(value float64) string {
	return FormatNumber(value, f.Locale, f.Options.MinFractionDigits, f.Options.MaxFractionDigits)
}

// Money formats amount in the configured currency and display mode.
func (f Formatter) Money(amount float64) string {
	return FormatMoney(amount, f.Options.Currency, f.Locale, f.Options.Display)
}

// Date formats d with the configured date style.
func (f Formatter) Date(d Date) string {
	return FormatDate(d, f.Locale, f.Options.DateStyle)
}

// DateString parses an ISO date string and formats it with the configured date style.
func (f Formatter) DateString(s string) string {
	return FormatDateString(s, f.Locale, f.Options.DateStyle)
}
