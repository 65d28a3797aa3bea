// Package invoice renders invoices into HTML documents and emails.
//
// An Invoice is validated, formatted for its resolved locale and turned
// into template bindings, which are then executed against a skin from
// package skins. Conditionals in skins follow the data: a section guarded
// by {{#if message}} appears only when the invoice has a message.
//
// Usage:
//
//	reg := skins.MustNew()
//	r := invoice.NewRenderer(reg, invoice.WithLogger(log))
//
//	doc, err := r.RenderDocument(ctx, inv, "modern")
//	if err != nil {
//		// errors.Is(err, invoice.ErrInvalidInvoice) for bad input
//	}
//	if doc.Fallback {
//		// "modern" was not available; doc.Style is the default
//	}
//
//	m := invoice.NewMailer(r, sender, log)
//	msg, err := m.Send(ctx, inv, "plain", "")
//
// Amounts are rounded half away from zero at the currency's minor unit
// when subtotal, tax and total are computed.
package invoice
