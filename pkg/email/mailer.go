package email

import (
	"context"
	"errors"

	"github.com/dmitrymomot/invoicekit/pkg/validator"
)

type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

type SendEmailParams struct {
	SendTo   string `json:"send_to"`             // Email address of the recipient
	Subject  string `json:"subject"`             // Subject line
	BodyHTML string `json:"body_html"`           // HTML body
	BodyText string `json:"body_text,omitempty"` // Optional plain-text alternative
	ReplyTo  string `json:"reply_to,omitempty"`  // Optional, defaults to the support address
	Tag      string `json:"tag,omitempty"`       // Optional
}

// Validate checks required fields and address formats. Failures wrap
// ErrInvalidParams and carry validator.ValidationErrors.
func (p SendEmailParams) Validate() error {
	err := validator.Apply(
		validator.RequiredString("send_to", p.SendTo),
		validator.When(p.SendTo != "", validator.ValidEmail("send_to", p.SendTo)),
		validator.RequiredString("subject", p.Subject),
		validator.MaxLenString("subject", p.Subject, 998),
		validator.RequiredString("body_html", p.BodyHTML),
		validator.When(p.ReplyTo != "", validator.ValidEmail("reply_to", p.ReplyTo)),
	)
	if err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}
