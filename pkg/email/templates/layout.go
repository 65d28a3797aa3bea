package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Render renders c into a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// LayoutParams configures the shared email shell.
type LayoutParams struct {
	Lang      string // value of <html lang>, e.g. "nb"
	Title     string
	Preheader string // inbox preview text, hidden in the body
	Body      templ.Component
	Footer    string
}

// Layout wraps Body in a table-based HTML document that renders
// consistently across mail clients. Text fields are HTML-escaped; Body is
// written as produced.
func Layout(p LayoutParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := p.Lang
		if lang == "" {
			lang = "en"
		}

		ew := &errWriter{w: w}
		ew.write(`<!DOCTYPE html><html lang="`, templ.EscapeString(lang), `"><head><meta charset="utf-8">`)
		ew.write(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		ew.write(`<title>`, templ.EscapeString(p.Title), `</title></head>`)
		ew.write(`<body style="margin:0;padding:0;background:#f4f5f7;font-family:Arial,Helvetica,sans-serif;color:#1f2933;">`)
		if p.Preheader != "" {
			ew.write(`<div style="display:none;max-height:0;overflow:hidden;">`, templ.EscapeString(p.Preheader), `</div>`)
		}
		ew.write(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr><td align="center" style="padding:24px 12px;">`)
		ew.write(`<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;background:#ffffff;border-radius:6px;"><tr><td style="padding:32px;">`)
		if ew.err != nil {
			return ew.err
		}

		if p.Body != nil {
			if err := p.Body.Render(ctx, w); err != nil {
				return err
			}
		}

		ew.write(`</td></tr></table>`)
		if p.Footer != "" {
			ew.write(`<p style="color:#9aa5b1;font-size:12px;margin:16px 0 0;">`, templ.EscapeString(p.Footer), `</p>`)
		}
		ew.write(`</td></tr></table></body></html>`)
		return ew.err
	})
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(parts ...string) {
	for _, s := range parts {
		if e.err != nil {
			return
		}
		_, e.err = io.WriteString(e.w, s)
	}
}
