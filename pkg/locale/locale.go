package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is the terminal fallback locale. Resolution never returns an empty string.
const Default = "en-US"

// languageLocales maps the UI language codes the product ships with to
// their canonical formatting locale.
var languageLocales = map[string]string{
	"en": "en-US",
	"nb": "nb-NO",
	"es": "es-ES",
}

// currencyLocales picks a formatting locale from the invoice currency when
// nothing better is known.
var currencyLocales = map[string]string{
	"EUR": "nb-NO",
	"NOK": "nb-NO",
	"SEK": "sv-SE",
	"DKK": "da-DK",
	"USD": "en-US",
	"GBP": "en-GB",
}

// Query holds the inputs of a locale resolution. Every field is optional.
type Query struct {
	Explicit string // Locale override, returned verbatim when set
	Language string // UI language code, e.g. "nb"
	Currency string // ISO 4217 code, e.g. "SEK"
}

// Resolve returns the effective locale for q.
//
// Priority, first match wins:
//  1. q.Explicit, verbatim (validity is the caller's responsibility)
//  2. q.Language mapped through the language table
//  3. q.Currency mapped through the currency table
//  4. Default
func Resolve(q Query) string {
	if explicit := strings.TrimSpace(q.Explicit); explicit != "" {
		return explicit
	}
	if tag, ok := languageLocales[strings.ToLower(strings.TrimSpace(q.Language))]; ok {
		return tag
	}
	if tag, ok := currencyLocales[strings.ToUpper(strings.TrimSpace(q.Currency))]; ok {
		return tag
	}
	return Default
}

// ResolveLocale is the positional form of Resolve.
//
// Example:
//
//	locale.ResolveLocale("", "nb", "EUR") // "nb-NO"
//	locale.ResolveLocale("", "", "SEK")   // "sv-SE"
func ResolveLocale(explicit, language, currency string) string {
	return Resolve(Query{Explicit: explicit, Language: language, Currency: currency})
}

// ForLanguage returns the mapped locale for a language code.
func ForLanguage(lang string) (string, bool) {
	tag, ok := languageLocales[strings.ToLower(strings.TrimSpace(lang))]
	return tag, ok
}

// ForCurrency returns the fallback locale for a currency code.
func ForCurrency(code string) (string, bool) {
	tag, ok := currencyLocales[strings.ToUpper(strings.TrimSpace(code))]
	return tag, ok
}

// SupportedLanguages lists the language codes known to the language table, sorted.
func SupportedLanguages() []string {
	return []string{"en", "es", "nb"}
}

// Tag parses a locale string into a language.Tag.
// Underscores are accepted as separators. Unparseable input yields the Default tag.
func Tag(locale string) language.Tag {
	normalized := Normalize(locale)
	if normalized == "" {
		return language.MustParse(Default)
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return language.MustParse(Default)
	}
	return tag
}

// Base returns the lower-case base language of a locale ("nb-NO" -> "nb").
func Base(locale string) string {
	base, _ := Tag(locale).Base()
	return base.String()
}

// Normalize trims whitespace and replaces underscores with hyphens.
func Normalize(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
