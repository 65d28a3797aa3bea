package invoice

import (
	"context"

	"github.com/dmitrymomot/invoicekit/pkg/email/templates"
	"github.com/dmitrymomot/invoicekit/pkg/format"
	"github.com/dmitrymomot/invoicekit/pkg/template"
)

// Binding names available to skins. The first nine are the long-standing
// set every skin may rely on; the rest are optional extras.
const (
	VarInvoiceNumber  = "invoiceNumber"
	VarClientName     = "clientName"
	VarCompanyName    = "companyName"
	VarTotal          = "total"
	VarCurrency       = "currency"
	VarIssueDate      = "issueDate"
	VarDueDate        = "dueDate"
	VarMessage        = "message"
	VarCompanyEmail   = "companyEmail"
	VarSubtotal       = "subtotal"
	VarTax            = "tax"
	VarTaxRate        = "taxRate"
	VarLineItems      = "lineItems"
	VarClientEmail    = "clientEmail"
	VarClientAddress  = "clientAddress"
	VarCompanyAddress = "companyAddress"
	VarPaymentURL     = "paymentUrl"
	VarPaymentQR      = "paymentQr"
	VarCurrencySymbol = "currencySymbol"
)

// Mode selects how values are prepared for the output format.
type Mode int

const (
	// ModeHTML escapes text and converts newlines to <br>.
	ModeHTML Mode = iota
	// ModeText keeps values as entered.
	ModeText
)

// BindingOptions controls value formatting.
type BindingOptions struct {
	Locale    string // empty means inv.ResolveLocale()
	Display   format.DisplayMode
	DateStyle format.DateStyle
	Mode      Mode
	PaymentQR string // data URI, bound only when set
}

// Bindings formats inv into template bindings.
//
// Every name is always bound, possibly to "", so conditionals follow the
// data: {{#if message}} shows exactly when there is a message, {{#if tax}}
// when tax is non-zero. No flags are set.
func (inv *Invoice) Bindings(ctx context.Context, opts BindingOptions) (*template.Bindings, error) {
	loc := opts.Locale
	if loc == "" {
		loc = inv.ResolveLocale()
	}
	code := inv.CurrencyCode()
	f := format.New(loc, format.Options{
		Currency:          code,
		Display:           opts.Display,
		DateStyle:         opts.DateStyle,
		MinFractionDigits: format.DefaultFractionDigits,
		MaxFractionDigits: format.DefaultFractionDigits,
	})

	text := func(s string) string {
		if opts.Mode == ModeHTML {
			return htmlText(s)
		}
		return s
	}

	var tax, taxRate string
	if t := inv.Tax(); t != 0 {
		tax = f.Money(t)
		taxRate = format.FormatPercent(inv.TaxRate, loc)
	}

	rows := make([]itemRow, 0, len(inv.Items))
	for _, it := range inv.Items {
		rows = append(rows, itemRow{
			Description: it.Description,
			Quantity:    format.FormatNumber(it.Quantity, loc, 0, 3),
			UnitPrice:   f.Money(it.UnitPrice),
			Amount:      f.Money(it.Amount()),
		})
	}
	lineItems := itemLines(rows)
	if opts.Mode == ModeHTML {
		html, err := templates.Render(ctx, itemRows(rows))
		if err != nil {
			return nil, err
		}
		lineItems = html
	}

	b := template.NewBindings()
	b.Set(VarInvoiceNumber, text(inv.Number)).
		Set(VarClientName, text(inv.Client.Name)).
		Set(VarCompanyName, text(inv.Company.Name)).
		Set(VarTotal, f.Money(inv.Total())).
		Set(VarCurrency, code).
		Set(VarIssueDate, f.Date(inv.IssueDate)).
		Set(VarDueDate, f.Date(inv.DueDate)).
		Set(VarMessage, text(inv.Message)).
		Set(VarCompanyEmail, text(inv.Company.Email)).
		Set(VarSubtotal, f.Money(inv.Subtotal())).
		Set(VarTax, tax).
		Set(VarTaxRate, taxRate).
		Set(VarLineItems, lineItems).
		Set(VarClientEmail, text(inv.Client.Email)).
		Set(VarClientAddress, text(inv.Client.Address)).
		Set(VarCompanyAddress, text(inv.Company.Address)).
		Set(VarPaymentURL, text(inv.PaymentURL)).
		Set(VarPaymentQR, opts.PaymentQR).
		Set(VarCurrencySymbol, format.CurrencySymbol(code))
	return b, nil
}
