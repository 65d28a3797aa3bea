package validator_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invoicekit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("number", "INV-1"),
			validator.NonNegativeAmount("amount", 10.0),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("number", "  "),
			validator.NonNegativeAmount("amount", -1.0),
			validator.ValidEmail("email", "nope"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"number", "amount", "email"}, verrs.Fields())
		assert.True(t, verrs.Has("email"))
		assert.Equal(t, []string{"amount cannot be negative"}, verrs.Get("amount"))
		assert.Contains(t, err.Error(), "number: field is required")
	})

	t.Run("extract through wrapping", func(t *testing.T) {
		t.Parallel()
		inner := validator.Apply(validator.RequiredString("number", ""))
		wrapped := errors.Join(errors.New("invalid invoice"), inner)
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
		assert.ErrorIs(t, fmt.Errorf("ctx: %w", inner), validator.ErrValidationFailed)
	})

	t.Run("non validation errors", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("x")))
		assert.False(t, validator.IsValidationError(errors.New("x")))
	})
}

func TestValidationErrorsHelpers(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{
		{Field: "email", Message: "a"},
		{Field: "email", Message: "b"},
		{Field: "name", Message: "c"},
	}

	assert.Equal(t, map[string][]string{"email": {"a", "b"}, "name": {"c"}}, verrs.Map())

	prefixed := verrs.Prefix("client.")
	assert.Equal(t, []string{"client.email", "client.name"}, prefixed.Fields())
	assert.Equal(t, "email", verrs[0].Field)
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
}

func TestWhen(t *testing.T) {
	t.Parallel()

	failing := validator.RequiredString("x", "")
	assert.NoError(t, validator.Apply(validator.When(false, failing)))
	assert.Error(t, validator.Apply(validator.When(true, failing)))
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule
		valid bool
	}{
		{"required ok", validator.RequiredString("f", "x"), true},
		{"required blank", validator.RequiredString("f", " \t"), false},
		{"max len runes", validator.MaxLenString("f", "øøø", 3), true},
		{"max len exceeded", validator.MaxLenString("f", "abcd", 3), false},
		{"email ok", validator.ValidEmail("f", "billing@acme.test"), true},
		{"email subdomain", validator.ValidEmail("f", "a.b@mail.acme.no"), true},
		{"email no at", validator.ValidEmail("f", "billing.acme.test"), false},
		{"email no dot in domain", validator.ValidEmail("f", "a@localhost"), false},
		{"email display name", validator.ValidEmail("f", "Acme <a@acme.test>"), false},
		{"email empty", validator.ValidEmail("f", ""), false},
		{"url https", validator.ValidHTTPURL("f", "https://pay.example.com/i/1"), true},
		{"url http", validator.ValidHTTPURL("f", "http://example.com"), true},
		{"url ftp", validator.ValidHTTPURL("f", "ftp://example.com"), false},
		{"url relative", validator.ValidHTTPURL("f", "/pay/1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(tt.rule)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFinancialRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule
		valid bool
		key   string
	}{
		{"non negative zero", validator.NonNegativeAmount("f", 0.0), true, ""},
		{"non negative int", validator.NonNegativeAmount("f", -1), false, "validation.non_negative_amount"},
		{"positive", validator.PositiveAmount("f", 0.01), true, ""},
		{"positive zero", validator.PositiveAmount("f", 0), false, "validation.positive_amount"},
		{"finite", validator.FiniteAmount("f", 1.5), true, ""},
		{"nan", validator.FiniteAmount("f", math.NaN()), false, "validation.finite_amount"},
		{"inf", validator.FiniteAmount("f", math.Inf(-1)), false, "validation.finite_amount"},
		{"currency EUR", validator.ValidCurrencyCode("f", "EUR"), true, ""},
		{"currency lower nok", validator.ValidCurrencyCode("f", "nok"), true, ""},
		{"currency unknown", validator.ValidCurrencyCode("f", "ABC"), false, "validation.currency_code"},
		{"currency XXX", validator.ValidCurrencyCode("f", "XXX"), false, "validation.currency_code"},
		{"currency too long", validator.ValidCurrencyCode("f", "EURO"), false, "validation.currency_code"},
		{"tax rate 25", validator.ValidTaxRate("f", 25), true, ""},
		{"tax rate 101", validator.ValidTaxRate("f", 101), false, "validation.tax_rate"},
		{"tax rate negative", validator.ValidTaxRate("f", -0.5), false, "validation.tax_rate"},
		{"max ok", validator.MaxNum("f", 10, 10), true, ""},
		{"max exceeded", validator.MaxNum("f", 11, 10), false, "validation.max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(tt.rule)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.key, verrs[0].TranslationKey)
		})
	}
}

func TestLocaleRules(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "es", "nb"}
	tests := []struct {
		name  string
		rule  validator.Rule
		valid bool
	}{
		{"locale nb-NO", validator.ValidLocale("f", "nb-NO"), true},
		{"locale underscore", validator.ValidLocale("f", "en_US"), true},
		{"locale bare language", validator.ValidLocale("f", "sv"), true},
		{"locale empty", validator.ValidLocale("f", ""), false},
		{"locale garbage", validator.ValidLocale("f", "not a locale"), false},
		{"language nb", validator.SupportedLanguage("f", "nb", supported), true},
		{"language upper", validator.SupportedLanguage("f", "EN", supported), true},
		{"language fr", validator.SupportedLanguage("f", "fr", supported), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(tt.rule)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDateRules(t *testing.T) {
	t.Parallel()

	issue := time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)

	assert.NoError(t, validator.Apply(validator.RequiredTime("f", issue)))
	assert.Error(t, validator.Apply(validator.RequiredTime("f", time.Time{})))

	// same day, earlier hour still counts as not before
	sameDay := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	assert.NoError(t, validator.Apply(validator.DateNotBefore("due", sameDay, issue)))
	assert.NoError(t, validator.Apply(validator.DateNotBefore("due", issue.AddDate(0, 1, 0), issue)))

	err := validator.Apply(validator.DateNotBefore("due", issue.AddDate(0, 0, -1), issue))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "date must not be before 2024-03-05", verrs[0].Message)
}
