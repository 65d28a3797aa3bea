package templates_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invoicekit/pkg/email/templates"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.Layout(templates.LayoutParams{
		Lang:      "nb",
		Title:     "Faktura <1>",
		Preheader: "Beløp 1 250,00 kr",
		Body:      templ.Raw("<p>Hei Kari</p>"),
		Footer:    "Fjord & Co",
	}))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, `<!DOCTYPE html><html lang="nb">`))
	assert.Contains(t, html, "<title>Faktura &lt;1&gt;</title>")
	assert.Contains(t, html, "Beløp 1 250,00 kr")
	assert.Contains(t, html, "<p>Hei Kari</p>")
	assert.Contains(t, html, "Fjord &amp; Co")
	assert.True(t, strings.HasSuffix(html, "</html>"))
}

func TestLayoutDefaults(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.Layout(templates.LayoutParams{}))
	require.NoError(t, err)
	assert.Contains(t, html, `lang="en"`)
	assert.NotContains(t, html, "display:none")
}
