package validator

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
)

func NonNegativeAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount cannot be negative",
			TranslationKey: "validation.non_negative_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func PositiveAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount must be positive",
			TranslationKey: "validation.positive_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// FiniteAmount rejects NaN and infinities, which no formatter can render.
func FiniteAmount(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsNaN(value) && !math.IsInf(value, 0)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount must be a finite number",
			TranslationKey: "validation.finite_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCurrencyCode validates an ISO 4217 code known to golang.org/x/text.
// Case is ignored; XXX (no currency) is rejected.
func ValidCurrencyCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if len(v) != 3 {
				return false
			}
			unit, err := currency.ParseISO(v)
			return err == nil && unit != currency.XXX
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid ISO 4217 currency code",
			TranslationKey: "validation.currency_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidTaxRate validates a percentage between 0 and 100 inclusive.
func ValidTaxRate(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0 && value <= 100
		},
		Error: ValidationError{
			Field:          field,
			Message:        "tax rate must be between 0% and 100%",
			TranslationKey: "validation.tax_rate",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
