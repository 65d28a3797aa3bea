// Package locale derives the effective formatting locale for a document from
// an explicit override, a UI language code, or the document currency.
//
// Resolution is a pure function over two fixed tables and always terminates
// with a non-empty tag:
//
//	locale.ResolveLocale("fr-CA", "nb", "EUR") // "fr-CA" (explicit wins)
//	locale.ResolveLocale("", "nb", "EUR")      // "nb-NO" (language beats currency)
//	locale.ResolveLocale("", "", "SEK")        // "sv-SE"
//	locale.ResolveLocale("", "", "")           // "en-US"
//
// The package also carries the resolved locale through context.Context and
// negotiates a language code from an Accept-Language header.
package locale
