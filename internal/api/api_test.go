package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invoicekit/internal/api"
	"github.com/dmitrymomot/invoicekit/pkg/email"
	"github.com/dmitrymomot/invoicekit/pkg/invoice"
	"github.com/dmitrymomot/invoicekit/pkg/skins"
	"github.com/dmitrymomot/invoicekit/pkg/storage"
)

const invoiceJSON = `{
	"number": "INV-7",
	"issue_date": "2024-03-05",
	"due_date": "2024-04-04",
	"currency": "USD",
	"client": {"name": "Jane Doe", "email": "jane@example.com"},
	"company": {"name": "Acme", "email": "billing@acme.test"},
	"amount": 1250
}`

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	return m.Called(ctx, params).Error(0)
}

func newRouter(t *testing.T, opts ...api.Option) http.Handler {
	t.Helper()
	r := invoice.NewRenderer(skins.MustNew())
	return api.New(r, opts...).Router()
}

func do(t *testing.T, h http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListStyles(t *testing.T) {
	t.Parallel()

	rec := do(t, newRouter(t), http.MethodGet, "/styles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Documents []struct{ ID string } `json:"documents"`
		Emails    []struct{ ID string } `json:"emails"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Documents, 4)
	require.Len(t, resp.Emails, 2)
	assert.Equal(t, "classic", resp.Documents[0].ID)
	assert.Equal(t, "plain", resp.Emails[0].ID)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := do(t, newRouter(t), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(api.RequestIDHeader))
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	failing := func(context.Context) error { return errors.New("storage unreachable") }
	rec := do(t, newRouter(t, api.WithReadinessChecks(failing)), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", rec.Body.String())
}

func TestRenderDocument(t *testing.T) {
	t.Parallel()

	h := newRouter(t)

	t.Run("html", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodPost, "/documents/modern", invoiceJSON, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Equal(t, "modern", rec.Header().Get(api.StyleHeader))
		assert.Empty(t, rec.Header().Get(api.StyleFallbackHeader))
		assert.Contains(t, rec.Body.String(), "USD 1,250.00")
		assert.Contains(t, rec.Body.String(), "INV-7")
	})

	t.Run("fallback header", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodPost, "/documents/rococo", invoiceJSON, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "classic", rec.Header().Get(api.StyleHeader))
		assert.Equal(t, "true", rec.Header().Get(api.StyleFallbackHeader))
	})

	t.Run("accept language sets locale", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodPost, "/documents/classic", invoiceJSON,
			map[string]string{"Accept-Language": "nb-NO,nb;q=0.9,en;q=0.5"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "05.03.2024")
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodPost, "/documents/classic", "{", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		t.Parallel()

		body := strings.Replace(invoiceJSON, "2024-03-05", "05/03/2024", 1)
		rec := do(t, h, http.MethodPost, "/documents/classic", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation errors", func(t *testing.T) {
		t.Parallel()

		body := strings.Replace(invoiceJSON, `"currency": "USD"`, `"currency": "DOLLARS"`, 1)
		rec := do(t, h, http.MethodPost, "/documents/classic", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Error  string              `json:"error"`
			Fields map[string][]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid invoice", resp.Error)
		assert.Contains(t, resp.Fields, "currency")
	})

	t.Run("store without storage", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodPost, "/documents/classic?store=1", invoiceJSON, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRenderDocumentStore(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStorage(t.TempDir(), "/archive/")
	require.NoError(t, err)
	h := newRouter(t, api.WithStorage(store))

	rec := do(t, h, http.MethodPost, "/documents/nordic?store=true", invoiceJSON, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Number string          `json:"number"`
		Style  string          `json:"style"`
		HTML   string          `json:"html"`
		Object *storage.Object `json:"object"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INV-7", resp.Number)
	assert.Equal(t, "nordic", resp.Style)
	assert.Empty(t, resp.HTML)
	require.NotNil(t, resp.Object)
	assert.True(t, strings.HasPrefix(resp.Object.URL, "/archive/invoices/"))

	data, err := store.Get(context.Background(), resp.Object.Key)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INV-7")

	// the returned URL is served by the archive routes
	rec = do(t, h, http.MethodGet, resp.Object.URL, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, string(data), rec.Body.String())
}

func TestArchive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := storage.NewLocalStorage(t.TempDir(), "/archive/")
	require.NoError(t, err)
	_, err = store.Put(ctx, "invoices/2024/03/INV-1.html", []byte("<p>INV-1</p>"), "text/html")
	require.NoError(t, err)
	_, err = store.Put(ctx, "invoices/2024/03/INV-2.html", []byte("<p>INV-2</p>"), "text/html")
	require.NoError(t, err)
	h := newRouter(t, api.WithStorage(store))

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodGet, "/archive/invoices/2024/03/INV-1.html", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Equal(t, "<p>INV-1</p>", rec.Body.String())
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodGet, "/archive/invoices/2024/03/nope.html", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("get escaping the root", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodGet, "/archive/invoices/%2E%2E/%2E%2E/%2E%2E/etc/passwd", "", nil)
		assert.Contains(t, []int{http.StatusBadRequest, http.StatusNotFound}, rec.Code)
	})

	t.Run("head", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodHead, "/archive/invoices/2024/03/INV-1.html", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())

		rec = do(t, h, http.MethodHead, "/archive/invoices/2024/03/nope.html", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodGet, "/archive?dir=invoices/2024/03", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Dir     string          `json:"dir"`
			Entries []storage.Entry `json:"entries"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invoices/2024/03", resp.Dir)
		require.Len(t, resp.Entries, 2)
		assert.Equal(t, "INV-1.html", resp.Entries[0].Name)
	})

	t.Run("list root", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodGet, "/archive", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"invoices"`)
	})

	t.Run("list missing dir", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodGet, "/archive?dir=receipts", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestArchiveDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := storage.NewLocalStorage(t.TempDir(), "/archive/")
	require.NoError(t, err)
	_, err = store.Put(ctx, "invoices/INV-1.html", []byte("x"), "text/html")
	require.NoError(t, err)
	h := newRouter(t, api.WithStorage(store))

	rec := do(t, h, http.MethodDelete, "/archive/invoices/INV-1.html", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, store.Exists(ctx, "invoices/INV-1.html"))

	rec = do(t, h, http.MethodDelete, "/archive/invoices/INV-1.html", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArchiveWithoutStorage(t *testing.T) {
	t.Parallel()

	h := newRouter(t)
	for _, tt := range []struct{ method, target string }{
		{http.MethodGet, "/archive"},
		{http.MethodGet, "/archive/invoices/INV-1.html"},
		{http.MethodDelete, "/archive/invoices/INV-1.html"},
	} {
		rec := do(t, h, tt.method, tt.target, "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, tt.method+" "+tt.target)
	}
}

func TestRenderEmail(t *testing.T) {
	t.Parallel()

	rec := do(t, newRouter(t), http.MethodPost, "/emails/branded", invoiceJSON, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "branded", rec.Header().Get(api.StyleHeader))

	var msg invoice.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "Acme: invoice INV-7 (USD 1,250.00)", msg.Subject)
	assert.Contains(t, msg.HTML, "<!DOCTYPE html>")
	assert.Contains(t, msg.Text, "Amount due: USD 1,250.00")
}

func TestSendEmail(t *testing.T) {
	t.Parallel()

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()

		rec := do(t, newRouter(t), http.MethodPost, "/emails/plain/send", invoiceJSON, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("sends to query recipient", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
			return p.SendTo == "ap@client.test" && p.Subject == "Invoice INV-7 from Acme"
		})).Return(nil).Once()

		r := invoice.NewRenderer(skins.MustNew())
		h := api.New(r, api.WithMailer(invoice.NewMailer(r, sender, nil))).Router()

		rec := do(t, h, http.MethodPost, "/emails/plain/send?to=ap@client.test", invoiceJSON, nil)
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp struct {
			To string `json:"to"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ap@client.test", resp.To)
		sender.AssertExpectations(t)
	})

	t.Run("no recipient", func(t *testing.T) {
		t.Parallel()

		r := invoice.NewRenderer(skins.MustNew())
		h := api.New(r, api.WithMailer(invoice.NewMailer(r, &mockSender{}, nil))).Router()

		body := strings.Replace(invoiceJSON, `"email": "jane@example.com"`, `"email": ""`, 1)
		rec := do(t, h, http.MethodPost, "/emails/plain/send", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	h := newRouter(t, api.WithMaxBodyBytes(16))
	rec := do(t, h, http.MethodPost, "/documents/classic", invoiceJSON, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRequestIDPassThrough(t *testing.T) {
	t.Parallel()

	h := newRouter(t)
	rec := do(t, h, http.MethodGet, "/health", "", map[string]string{api.RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(api.RequestIDHeader))

	rec = do(t, h, http.MethodGet, "/health", "", map[string]string{api.RequestIDHeader: "bad id!"})
	assert.NotEqual(t, "bad id!", rec.Header().Get(api.RequestIDHeader))
}
