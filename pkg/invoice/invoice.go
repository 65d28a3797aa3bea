package invoice

import (
	"math"
	"strings"

	"golang.org/x/text/currency"

	"github.com/dmitrymomot/invoicekit/pkg/format"
	"github.com/dmitrymomot/invoicekit/pkg/locale"
)

// Party is the issuing company or the billed client.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"` // may span several lines
}

// LineItem is one billed row. UnitPrice may be negative for discounts.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Amount returns Quantity * UnitPrice without rounding.
func (l LineItem) Amount() float64 {
	return l.Quantity * l.UnitPrice
}

// Invoice is the input of every render. Amounts are in major units of
// Currency. When Items is empty, Amount is the pre-tax total.
type Invoice struct {
	Number     string      `json:"number"`
	IssueDate  format.Date `json:"issue_date"`
	DueDate    format.Date `json:"due_date"`
	Currency   string      `json:"currency"`
	Language   string      `json:"language,omitempty"` // UI language, e.g. "nb"
	Locale     string      `json:"locale,omitempty"`   // explicit formatting locale override
	Client     Party       `json:"client"`
	Company    Party       `json:"company"`
	Items      []LineItem  `json:"items,omitempty"`
	Amount     float64     `json:"amount,omitempty"`
	TaxRate    float64     `json:"tax_rate,omitempty"` // percent, 0-100
	Message    string      `json:"message,omitempty"`
	PaymentURL string      `json:"payment_url,omitempty"`
}

// ResolveLocale returns the effective formatting locale: the explicit
// override, else the language mapping, else the currency mapping, else
// locale.Default.
func (inv *Invoice) ResolveLocale() string {
	return locale.Resolve(locale.Query{
		Explicit: inv.Locale,
		Language: inv.Language,
		Currency: inv.Currency,
	})
}

// CurrencyCode returns the upper-cased, trimmed currency code.
func (inv *Invoice) CurrencyCode() string {
	return strings.ToUpper(strings.TrimSpace(inv.Currency))
}

// Subtotal sums line items, or returns Amount when there are none.
// The result is rounded to the currency's minor unit.
func (inv *Invoice) Subtotal() float64 {
	if len(inv.Items) == 0 {
		return roundTo(inv.Amount, inv.CurrencyCode())
	}
	var sum float64
	for _, it := range inv.Items {
		sum += it.Amount()
	}
	return roundTo(sum, inv.CurrencyCode())
}

// Tax returns Subtotal * TaxRate / 100, rounded to the minor unit.
func (inv *Invoice) Tax() float64 {
	if inv.TaxRate == 0 {
		return 0
	}
	return roundTo(inv.Subtotal()*inv.TaxRate/100, inv.CurrencyCode())
}

// Total returns Subtotal + Tax.
func (inv *Invoice) Total() float64 {
	return roundTo(inv.Subtotal()+inv.Tax(), inv.CurrencyCode())
}

// roundTo rounds half away from zero at the currency's standard scale,
// two digits for unknown codes.
func roundTo(v float64, code string) float64 {
	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
	}
	p := math.Pow10(scale)
	return math.Round(v*p) / p
}
