package invoice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/invoicekit/pkg/email/templates"
	"github.com/dmitrymomot/invoicekit/pkg/format"
	"github.com/dmitrymomot/invoicekit/pkg/locale"
	"github.com/dmitrymomot/invoicekit/pkg/logger"
	"github.com/dmitrymomot/invoicekit/pkg/qrcode"
	"github.com/dmitrymomot/invoicekit/pkg/skins"
	"github.com/dmitrymomot/invoicekit/pkg/template"
)

// textBody is the plain-text alternative sent with every email skin.
var textBody = template.MustParse(`Invoice {{invoiceNumber}} from {{companyName}}

Hello {{clientName}},
{{#if message}}
{{message}}
{{/if}}
Amount due: {{total}}
Issue date: {{issueDate}}
Due date: {{dueDate}}
{{#if lineItems}}
{{lineItems}}
{{/if}}{{#if tax}}Subtotal: {{subtotal}}
Tax ({{taxRate}}): {{tax}}
{{/if}}{{#if paymentUrl}}
Pay online: {{paymentUrl}}
{{/if}}
{{companyName}}{{#if companyEmail}} <{{companyEmail}}>{{/if}}
`)

// Document is a rendered invoice document.
type Document struct {
	Number    string      `json:"number"`
	Style     skins.Style `json:"style"`
	Requested string      `json:"requested,omitempty"`
	Fallback  bool        `json:"fallback"`
	Locale    string      `json:"locale"`
	HTML      string      `json:"html"`
}

// Message is a rendered invoice email.
type Message struct {
	Number    string      `json:"number"`
	Style     skins.Style `json:"style"`
	Requested string      `json:"requested,omitempty"`
	Fallback  bool        `json:"fallback"`
	Locale    string      `json:"locale"`
	To        string      `json:"to,omitempty"`
	ReplyTo   string      `json:"reply_to,omitempty"`
	Subject   string      `json:"subject"`
	HTML      string      `json:"html"`
	Text      string      `json:"text"`
}

// Renderer turns invoices into documents and emails using a skin registry.
// It is safe for concurrent use.
type Renderer struct {
	skins     *skins.Registry
	logger    *slog.Logger
	display   format.DisplayMode
	dateStyle format.DateStyle
	qrSize    int
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

func WithLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithDisplayMode sets how amounts show the currency. Default is format.DisplayCode.
func WithDisplayMode(m format.DisplayMode) RendererOption {
	return func(r *Renderer) {
		r.display = m
	}
}

// WithDateStyle sets the date layout. Default is format.DateShort.
func WithDateStyle(s format.DateStyle) RendererOption {
	return func(r *Renderer) {
		r.dateStyle = s
	}
}

// WithPaymentQR binds a QR code image of the payment URL as {{paymentQr}}
// with the given size in pixels. Disabled by default.
func WithPaymentQR(size int) RendererOption {
	return func(r *Renderer) {
		r.qrSize = size
	}
}

// NewRenderer creates a Renderer over reg.
func NewRenderer(reg *skins.Registry, opts ...RendererOption) *Renderer {
	r := &Renderer{
		skins:     reg,
		logger:    logger.Discard(),
		display:   format.DisplayCode,
		dateStyle: format.DateShort,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("invoice"))
	return r
}

// RenderDocument validates inv and renders it with the document skin for
// style. Unknown styles fall back to skins.DefaultDocument and report it
// in Document.Fallback.
func (r *Renderer) RenderDocument(ctx context.Context, inv *Invoice, style string) (*Document, error) {
	start := time.Now()
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	res := r.skins.Document(style)
	loc := r.locale(ctx, inv)
	b, err := inv.Bindings(ctx, r.bindingOptions(loc, ModeHTML, inv))
	if err != nil {
		return nil, r.fail(ctx, inv, res, err)
	}
	html, err := res.Skin.Body.Execute(b)
	if err != nil {
		return nil, r.fail(ctx, inv, res, err)
	}

	r.logger.DebugContext(ctx, "invoice document rendered",
		logger.InvoiceNumber(inv.Number),
		logger.Style(string(res.Skin.Style)),
		logger.Locale(loc),
		logger.Duration(time.Since(start)),
	)
	return &Document{
		Number:    inv.Number,
		Style:     res.Skin.Style,
		Requested: res.Requested,
		Fallback:  res.Fallback,
		Locale:    loc,
		HTML:      html,
	}, nil
}

// RenderEmail validates inv and renders subject, HTML and text bodies with
// the email skin for style. The HTML body is wrapped in the shared email
// layout. Reply-To is the company email when present.
func (r *Renderer) RenderEmail(ctx context.Context, inv *Invoice, style string) (*Message, error) {
	start := time.Now()
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	res := r.skins.Email(style)
	loc := r.locale(ctx, inv)

	htmlVars, err := inv.Bindings(ctx, r.bindingOptions(loc, ModeHTML, inv))
	if err != nil {
		return nil, r.fail(ctx, inv, res, err)
	}
	textVars, err := inv.Bindings(ctx, r.bindingOptions(loc, ModeText, inv))
	if err != nil {
		return nil, r.fail(ctx, inv, res, err)
	}

	subject := ""
	if res.Skin.Subject != nil {
		if subject, err = res.Skin.Subject.Execute(textVars); err != nil {
			return nil, r.fail(ctx, inv, res, err)
		}
	}
	body, err := res.Skin.Body.Execute(htmlVars)
	if err != nil {
		return nil, r.fail(ctx, inv, res, err)
	}
	text, err := textBody.Execute(textVars)
	if err != nil {
		return nil, r.fail(ctx, inv, res, err)
	}

	html, err := templates.Render(ctx, templates.Layout(templates.LayoutParams{
		Lang:      locale.Base(loc),
		Title:     subject,
		Preheader: subject,
		Body:      templ.Raw(body),
		Footer:    inv.Company.Name,
	}))
	if err != nil {
		return nil, r.fail(ctx, inv, res, err)
	}

	r.logger.DebugContext(ctx, "invoice email rendered",
		logger.InvoiceNumber(inv.Number),
		logger.Style(string(res.Skin.Style)),
		logger.Locale(loc),
		logger.Duration(time.Since(start)),
	)
	return &Message{
		Number:    inv.Number,
		Style:     res.Skin.Style,
		Requested: res.Requested,
		Fallback:  res.Fallback,
		Locale:    loc,
		To:        inv.Client.Email,
		ReplyTo:   inv.Company.Email,
		Subject:   subject,
		HTML:      html,
		Text:      text,
	}, nil
}

// Styles returns the loaded skins of kind.
func (r *Renderer) Styles(kind skins.Kind) []*skins.Skin {
	return r.skins.Skins(kind)
}

// locale picks the formatting locale: explicit and language hints on the
// invoice first, then the request locale from ctx, then the currency.
func (r *Renderer) locale(ctx context.Context, inv *Invoice) string {
	if inv.Locale == "" && inv.Language == "" {
		if l, ok := locale.Lookup(ctx); ok {
			return locale.Normalize(l)
		}
	}
	return inv.ResolveLocale()
}

func (r *Renderer) bindingOptions(loc string, mode Mode, inv *Invoice) BindingOptions {
	opts := BindingOptions{
		Locale:    loc,
		Display:   r.display,
		DateStyle: r.dateStyle,
		Mode:      mode,
	}
	if r.qrSize > 0 && inv.PaymentURL != "" && mode == ModeHTML {
		uri, err := qrcode.DataURI(inv.PaymentURL, qrcode.WithSize(r.qrSize))
		if err != nil {
			r.logger.Warn("payment qr code skipped",
				logger.InvoiceNumber(inv.Number),
				logger.Error(err),
			)
		} else {
			opts.PaymentQR = uri
		}
	}
	return opts
}

func (r *Renderer) fail(ctx context.Context, inv *Invoice, res skins.Resolution, err error) error {
	r.logger.ErrorContext(ctx, "invoice render failed",
		logger.InvoiceNumber(inv.Number),
		logger.Style(string(res.Skin.Style)),
		logger.Error(err),
	)
	return errors.Join(ErrRender, fmt.Errorf("style %q: %w", res.Skin.Style, err))
}
