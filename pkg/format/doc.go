// Package format renders numbers, money and calendar dates as locale-aware
// display strings for invoice documents and emails.
//
// Number grouping, decimal separators and native currency symbols come from
// golang.org/x/text; localized month and weekday names come from
// github.com/goodsign/monday. Every formatter is total: it never returns an
// error and falls back to a sensible rendering for unknown locales or codes.
//
// # Money
//
// FormatMoney supports three display modes. DisplayCode, the default for
// documents, always prints the ISO code followed by a plain number so that
// "$" never has to be disambiguated on a financial document:
//
//	format.FormatMoney(1250, "EUR", "en-US", format.DisplayCode)   // "EUR 1,250.00"
//	format.FormatMoney(1250, "USD", "en-US", format.DisplaySymbol) // "$1,250.00"
//	format.FormatMoney(1250, "NOK", "nb-NO", format.DisplayName)   // "1 250,00 norske kroner"
//
// CurrencySymbol is a separate, UI-only lookup (EUR, USD, GBP have symbols;
// other codes are echoed) and is deliberately not derived from DisplaySymbol.
//
// # Dates
//
// Invoice dates are calendar days. Date holds year, month and day without a
// zone and ParseDate reads ISO strings literally, so "2024-03-01" is March 1st
// in every time zone.
package format
