package api

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/invoicekit/pkg/environment"
	"github.com/dmitrymomot/invoicekit/pkg/httpserver"
	"github.com/dmitrymomot/invoicekit/pkg/invoice"
	"github.com/dmitrymomot/invoicekit/pkg/locale"
	"github.com/dmitrymomot/invoicekit/pkg/logger"
	"github.com/dmitrymomot/invoicekit/pkg/storage"
)

// DefaultMaxBodyBytes limits invoice request bodies.
const DefaultMaxBodyBytes = 1 << 20

// Handler serves the rendering API.
type Handler struct {
	renderer      *invoice.Renderer
	mailer        *invoice.Mailer
	store         storage.Storage
	logger        *slog.Logger
	defaultLocale string
	env           environment.Environment
	checks        []httpserver.Check
	maxBodyBytes  int64
	now           func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithMailer enables POST /emails/{style}/send.
func WithMailer(m *invoice.Mailer) Option {
	return func(h *Handler) { h.mailer = m }
}

// WithStorage enables archiving with POST /documents/{style}?store=1 and
// the /archive routes serving the stored documents.
func WithStorage(s storage.Storage) Option {
	return func(h *Handler) { h.store = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithDefaultLocale is used for requests whose Accept-Language matches no
// supported language. Empty leaves resolution to the invoice currency.
func WithDefaultLocale(loc string) Option {
	return func(h *Handler) { h.defaultLocale = loc }
}

// WithEnvironment stores env in every request context. In development,
// 500 responses carry the underlying error message.
func WithEnvironment(env environment.Environment) Option {
	return func(h *Handler) { h.env = env }
}

// WithReadinessChecks makes /health a readiness probe running checks.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(h *Handler) { h.checks = append(h.checks, checks...) }
}

func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// New creates a Handler around r.
func New(r *invoice.Renderer, opts ...Option) *Handler {
	h := &Handler{
		renderer:     r,
		logger:       logger.Discard(),
		maxBodyBytes: DefaultMaxBodyBytes,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("api"))
	return h
}

// Router returns the HTTP routes:
//
//	GET  /health
//	GET  /styles
//	POST /documents/{style}
//	POST /emails/{style}
//	POST /emails/{style}/send
//	GET  /archive?dir=
//	GET, HEAD, DELETE /archive/*
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	if h.env != "" {
		r.Use(environment.Middleware(h.env))
	}
	r.Use(
		middleware.RealIP,
		RequestID,
		middleware.Recoverer,
		h.accessLog,
		locale.Middleware(h.defaultLocale),
	)

	r.Get("/health", httpserver.HealthCheckHandler(h.logger, h.checks...))
	r.Get("/styles", h.listStyles)
	r.Post("/documents/{style}", h.renderDocument)
	r.Route("/emails/{style}", func(r chi.Router) {
		r.Post("/", h.renderEmail)
		r.Post("/send", h.sendEmail)
	})
	r.Route("/archive", func(r chi.Router) {
		r.Get("/", h.listArchive)
		r.Get("/*", h.getArchived)
		r.Head("/*", h.headArchived)
		r.Delete("/*", h.deleteArchived)
	})
	return r
}
