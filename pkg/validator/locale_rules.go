package validator

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// ValidLocale validates a BCP 47 tag such as "nb-NO". Underscores are
// accepted as separators.
func ValidLocale(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.ReplaceAll(strings.TrimSpace(value), "_", "-")
			if v == "" {
				return false
			}
			_, err := language.Parse(v)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid locale tag",
			TranslationKey: "validation.locale",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// SupportedLanguage validates value against a fixed list of language
// codes, ignoring case.
func SupportedLanguage(field, value string, supported []string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.ToLower(strings.TrimSpace(value))
			return slices.Contains(supported, v)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be one of: " + strings.Join(supported, ", "),
			TranslationKey: "validation.language",
			TranslationValues: map[string]any{
				"field":     field,
				"supported": supported,
			},
		},
	}
}
