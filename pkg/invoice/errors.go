package invoice

import "errors"

var (
	ErrInvalidInvoice = errors.New("invalid invoice")
	ErrRender         = errors.New("failed to render invoice")
	ErrNoRecipient    = errors.New("invoice has no recipient email")
)
