package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInvoice = `{
	"number": "INV-9",
	"issue_date": "2024-03-05",
	"due_date": "2024-04-04",
	"currency": "EUR",
	"language": "es",
	"client": {"name": "Ana", "email": "ana@example.es"},
	"company": {"name": "Acme SL", "email": "factura@acme.test"},
	"amount": 1250.5
}`

// setup points storage and the dev mailbox at temp dirs and writes the
// sample invoice. Commands share package-level flags, so tests here do
// not run in parallel.
func setup(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("STORAGE_DRIVER", "local")
	t.Setenv("STORAGE_DIR", filepath.Join(dir, "documents"))
	t.Setenv("STORAGE_BASE_URL", "/archive/")
	t.Setenv("EMAIL_DEV_DIR", filepath.Join(dir, "emails"))
	t.Setenv("EMAIL_POSTMARK_SERVER_TOKEN", "")

	in := filepath.Join(dir, "invoice.json")
	require.NoError(t, os.WriteFile(in, []byte(sampleInvoice), 0o600))
	return dir, in
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	renderStyle, renderIn, renderOut, renderStore = "classic", "-", "", false
	emailStyle, emailIn, emailSend, emailTo = "plain", "-", false, ""
	stylesJSON = false
	envFiles = nil

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir, in := setup(t)

	t.Run("stdout", func(t *testing.T) {
		out, _, err := run(t, "", "render", "--style", "modern", "--in", in)
		require.NoError(t, err)
		assert.Contains(t, out, "INV-9")
		assert.Contains(t, out, "EUR")
	})

	t.Run("stdin to file", func(t *testing.T) {
		target := filepath.Join(dir, "out.html")
		out, _, err := run(t, sampleInvoice, "render", "-o", target)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(data), "INV-9")
	})

	t.Run("fallback warning", func(t *testing.T) {
		_, stderr, err := run(t, "", "render", "--style", "gothic", "--in", in)
		require.NoError(t, err)
		assert.Contains(t, stderr, `style "gothic" not found, using "classic"`)
	})

	t.Run("store", func(t *testing.T) {
		_, stderr, err := run(t, "", "render", "--in", in, "--store")
		require.NoError(t, err)
		assert.Contains(t, stderr, "stored /archive/invoices/")

		matches, err := filepath.Glob(filepath.Join(dir, "documents", "invoices", "*", "*", "*.html"))
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, _, err := run(t, "{", "render")
		assert.ErrorContains(t, err, "failed to decode invoice")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "", "render", "--in", filepath.Join(dir, "missing.json"))
		assert.ErrorContains(t, err, "failed to open invoice")
	})
}

func TestEmailCommand(t *testing.T) {
	dir, in := setup(t)

	t.Run("preview", func(t *testing.T) {
		out, _, err := run(t, "", "email", "--in", in)
		require.NoError(t, err)

		var msg struct {
			Subject string `json:"subject"`
			Locale  string `json:"locale"`
			Text    string `json:"text"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &msg))
		assert.Equal(t, "Invoice INV-9 from Acme SL", msg.Subject)
		assert.Equal(t, "es-ES", msg.Locale)
		assert.Contains(t, msg.Text, "INV-9")
	})

	t.Run("send", func(t *testing.T) {
		out, _, err := run(t, "", "email", "--in", in, "--send", "--to", "pagos@example.es")
		require.NoError(t, err)
		assert.Equal(t, "sent invoice INV-9 to pagos@example.es\n", out)

		files, err := filepath.Glob(filepath.Join(dir, "emails", "*.json"))
		require.NoError(t, err)
		require.Len(t, files, 1)
		meta, err := os.ReadFile(files[0])
		require.NoError(t, err)
		assert.Contains(t, string(meta), "pagos@example.es")
	})
}

func TestStylesCommand(t *testing.T) {
	setup(t)

	t.Run("table", func(t *testing.T) {
		out, _, err := run(t, "", "styles")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 7)
		assert.True(t, strings.HasPrefix(lines[0], "KIND"))
		assert.Contains(t, lines[1], "classic")
		assert.Contains(t, lines[1], "yes")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, "", "styles", "--json")
		require.NoError(t, err)

		var list []styleRow
		require.NoError(t, json.Unmarshal([]byte(out), &list))
		require.Len(t, list, 6)
		assert.Equal(t, "plain", string(list[4].ID))
		assert.True(t, list[4].Default)
		assert.False(t, list[5].Default)
	})
}

func TestEnvFileFlag(t *testing.T) {
	_, in := setup(t)

	_, _, err := run(t, "", "render", "--in", in, "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
