package invoice

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/invoicekit/pkg/email"
	"github.com/dmitrymomot/invoicekit/pkg/logger"
)

// EmailTag marks invoice emails at the provider.
const EmailTag = "invoice"

// Params converts m into send parameters for to. An empty to means m.To.
func (m *Message) Params(to string) email.SendEmailParams {
	if to == "" {
		to = m.To
	}
	return email.SendEmailParams{
		SendTo:   to,
		Subject:  m.Subject,
		BodyHTML: m.HTML,
		BodyText: m.Text,
		ReplyTo:  m.ReplyTo,
		Tag:      EmailTag,
	}
}

// Mailer renders invoice emails and hands them to an email.EmailSender.
type Mailer struct {
	renderer *Renderer
	sender   email.EmailSender
	logger   *slog.Logger
}

// NewMailer creates a Mailer. A nil logger discards output.
func NewMailer(r *Renderer, sender email.EmailSender, log *slog.Logger) *Mailer {
	if log == nil {
		log = logger.Discard()
	}
	return &Mailer{
		renderer: r,
		sender:   sender,
		logger:   log.With(logger.Component("invoice_mailer")),
	}
}

// Send renders inv with the email style and sends it to to, or to the
// client email when to is empty. It returns the rendered message.
func (m *Mailer) Send(ctx context.Context, inv *Invoice, style, to string) (*Message, error) {
	if to == "" && inv.Client.Email == "" {
		return nil, ErrNoRecipient
	}

	msg, err := m.renderer.RenderEmail(ctx, inv, style)
	if err != nil {
		return nil, err
	}

	params := msg.Params(to)
	if err := m.sender.SendEmail(ctx, params); err != nil {
		m.logger.ErrorContext(ctx, "failed to send invoice email",
			logger.InvoiceNumber(inv.Number),
			logger.Error(err),
		)
		return nil, err
	}
	msg.To = params.SendTo

	m.logger.InfoContext(ctx, "invoice email sent",
		logger.InvoiceNumber(inv.Number),
		logger.Style(string(msg.Style)),
	)
	return msg, nil
}
