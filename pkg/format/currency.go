package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/invoicekit/pkg/locale"
)

// uiSymbols is the symbol table for compact UI display. Scandinavian crowns
// have no distinct symbol and are shown by code.
var uiSymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// symbolAfterAmount lists base languages that write the symbol after the amount.
var symbolAfterAmount = map[string]bool{
	"nb": true, "nn": true, "no": true,
	"sv": true, "da": true, "fi": true,
	"de": true, "fr": true, "es": true,
	"it": true, "pl": true, "cs": true,
}

// currencyNames holds spelled-out currency names per base language.
var currencyNames = map[string]map[string]string{
	"en": {
		"EUR": "euros", "USD": "US dollars", "GBP": "British pounds",
		"NOK": "Norwegian kroner", "SEK": "Swedish kronor", "DKK": "Danish kroner",
	},
	"nb": {
		"EUR": "euro", "USD": "amerikanske dollar", "GBP": "britiske pund",
		"NOK": "norske kroner", "SEK": "svenske kroner", "DKK": "danske kroner",
	},
	"sv": {
		"EUR": "euro", "USD": "US-dollar", "GBP": "brittiska pund",
		"NOK": "norska kronor", "SEK": "svenska kronor", "DKK": "danska kronor",
	},
	"da": {
		"EUR": "euro", "USD": "amerikanske dollar", "GBP": "britiske pund",
		"NOK": "norske kroner", "SEK": "svenske kroner", "DKK": "danske kroner",
	},
	"es": {
		"EUR": "euros", "USD": "dólares estadounidenses", "GBP": "libras esterlinas",
		"NOK": "coronas noruegas", "SEK": "coronas suecas", "DKK": "coronas danesas",
	},
}

// CurrencySymbol returns the short symbol used for UI display.
// Codes without a distinct symbol, and unknown codes, are returned upper-cased.
//
// This table is independent of FormatMoney(..., DisplaySymbol), which uses
// the locale-native symbol and may differ.
func CurrencySymbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if sym, ok := uiSymbols[code]; ok {
		return sym
	}
	return code
}

// FormatMoney renders amount in currency code for locale.
//
// DisplayCode (also used for empty or unknown modes) prints the ISO code and
// a plain locale-formatted number, avoiding ambiguous symbols such as "$":
//
//	format.FormatMoney(1250, "EUR", "en-US", format.DisplayCode) // "EUR 1,250.00"
//
// DisplaySymbol and DisplayName use the locale conventions. Codes that are
// not valid ISO 4217 currencies degrade to DisplayCode.
func FormatMoney(amount float64, code, loc string, mode DisplayMode) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return FormatNumberDefault(amount, loc)
	}

	switch mode {
	case DisplaySymbol, DisplayName:
		unit, err := currency.ParseISO(code)
		if err != nil || unit == currency.XXX {
			return FormatCurrencyWithCode(amount, code, loc)
		}
		if mode == DisplaySymbol {
			return formatWithSymbol(amount, unit, loc)
		}
		return formatWithName(amount, unit, loc)
	default:
		return FormatCurrencyWithCode(amount, code, loc)
	}
}

// FormatCurrencyWithCode renders "<CODE> <number>" with two fraction digits.
func FormatCurrencyWithCode(amount float64, code, loc string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	formatted := FormatNumberDefault(amount, loc)
	if code == "" {
		return formatted
	}
	return code + " " + formatted
}

// nbsp keeps the amount and its symbol on one line.
const nbsp = "\u00a0"

func formatWithSymbol(amount float64, unit currency.Unit, loc string) string {
	tag := locale.Tag(loc)
	symbol := message.NewPrinter(tag).Sprintf("%v", currency.Symbol(unit))
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = unit.String()
	}

	scale, _ := currency.Standard.Rounding(unit)

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := FormatNumber(amount, loc, scale, scale)

	if symbolAfterAmount[locale.Base(loc)] {
		return sign + digits + nbsp + symbol
	}

	// alphabetic symbols ("NOK", "kr") need a separator when leading
	if r, _ := utf8.DecodeLastRuneInString(symbol); unicode.IsLetter(r) {
		return sign + symbol + nbsp + digits
	}
	return sign + symbol + digits
}

func formatWithName(amount float64, unit currency.Unit, loc string) string {
	scale, _ := currency.Standard.Rounding(unit)
	digits := FormatNumber(amount, loc, scale, scale)

	names, ok := currencyNames[locale.Base(loc)]
	if !ok {
		names = currencyNames["en"]
	}
	name, ok := names[unit.String()]
	if !ok {
		name = unit.String()
	}
	return digits + " " + name
}
