package invoice

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/invoicekit/pkg/format"
	"github.com/dmitrymomot/invoicekit/pkg/locale"
	"github.com/dmitrymomot/invoicekit/pkg/validator"
)

const (
	maxNumberLength  = 64
	maxNameLength    = 200
	maxMessageLength = 4000
	maxItems         = 500
)

// Validate checks that inv can be rendered. The returned error wraps
// ErrInvalidInvoice and carries validator.ValidationErrors with one entry
// per failed field.
func (inv *Invoice) Validate() error {
	rules := []validator.Rule{
		validator.RequiredString("number", inv.Number),
		validator.MaxLenString("number", inv.Number, maxNumberLength),
		validator.RequiredTime("issue_date", dateTime(inv.IssueDate)),
		validator.RequiredTime("due_date", dateTime(inv.DueDate)),
		validator.When(!inv.IssueDate.IsZero() && !inv.DueDate.IsZero(),
			validator.DateNotBefore("due_date", dateTime(inv.DueDate), dateTime(inv.IssueDate))),
		validator.ValidCurrencyCode("currency", inv.Currency),
		validator.When(inv.Language != "",
			validator.SupportedLanguage("language", inv.Language, locale.SupportedLanguages())),
		validator.When(inv.Locale != "", validator.ValidLocale("locale", inv.Locale)),
		validator.FiniteAmount("amount", inv.Amount),
		validator.ValidTaxRate("tax_rate", inv.TaxRate),
		validator.MaxLenString("message", inv.Message, maxMessageLength),
		validator.When(inv.PaymentURL != "", validator.ValidHTTPURL("payment_url", inv.PaymentURL)),
		validator.MaxNum("items", len(inv.Items), maxItems),
	}
	rules = append(rules, partyRules("client", inv.Client)...)
	rules = append(rules, partyRules("company", inv.Company)...)

	for i, it := range inv.Items {
		field := fmt.Sprintf("items[%d]", i)
		rules = append(rules,
			validator.RequiredString(field+".description", it.Description),
			validator.PositiveAmount(field+".quantity", it.Quantity),
			validator.FiniteAmount(field+".quantity", it.Quantity),
			validator.FiniteAmount(field+".unit_price", it.UnitPrice),
		)
	}

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidInvoice, err)
	}

	// Only meaningful once every amount is known to be finite.
	if err := validator.Apply(validator.NonNegativeAmount("total", inv.Total())); err != nil {
		return errors.Join(ErrInvalidInvoice, err)
	}
	return nil
}

func partyRules(prefix string, p Party) []validator.Rule {
	return []validator.Rule{
		validator.RequiredString(prefix+".name", p.Name),
		validator.MaxLenString(prefix+".name", p.Name, maxNameLength),
		validator.When(p.Email != "", validator.ValidEmail(prefix+".email", p.Email)),
	}
}

// dateTime maps the zero Date to the zero time so RequiredTime can see it.
func dateTime(d format.Date) time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	return d.Time()
}
