package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/invoicekit/internal/api"
	"github.com/dmitrymomot/invoicekit/pkg/config"
	"github.com/dmitrymomot/invoicekit/pkg/email"
	"github.com/dmitrymomot/invoicekit/pkg/environment"
	"github.com/dmitrymomot/invoicekit/pkg/format"
	"github.com/dmitrymomot/invoicekit/pkg/httpserver"
	"github.com/dmitrymomot/invoicekit/pkg/invoice"
	"github.com/dmitrymomot/invoicekit/pkg/locale"
	"github.com/dmitrymomot/invoicekit/pkg/logger"
	"github.com/dmitrymomot/invoicekit/pkg/skins"
	"github.com/dmitrymomot/invoicekit/pkg/storage"
	"github.com/dmitrymomot/invoicekit/pkg/validator"
)

var (
	ErrInvalidConfig = errors.New("invalid application config")
	ErrInit          = errors.New("failed to initialize application")
)

// App holds the wired services.
type App struct {
	Config   Config
	Env      environment.Environment
	Logger   *slog.Logger
	Skins    *skins.Registry
	Renderer *invoice.Renderer
	Sender   email.EmailSender
	Mailer   *invoice.Mailer
	Storage  storage.Storage
	API      *api.Handler
}

type options struct {
	output  io.Writer
	sender  email.EmailSender
	storage storage.Storage
}

// Option overrides a dependency New would otherwise build from Config.
type Option func(*options)

// WithLogOutput sends log records to w instead of stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

func WithEmailSender(s email.EmailSender) Option {
	return func(o *options) { o.sender = s }
}

func WithStorage(s storage.Storage) Option {
	return func(o *options) { o.storage = s }
}

// LoadConfig loads the given .env files, or ".env" when none are given,
// and parses Config from the environment.
func LoadConfig(envFiles ...string) (Config, error) {
	var cfg Config
	if err := config.LoadEnv(envFiles...); err != nil {
		return cfg, err
	}
	if err := config.Parse(&cfg, ""); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// New builds every service from cfg. Postmark is used when its tokens are
// set; otherwise emails are written to Email.DevDir.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	o := &options{output: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	err := validator.Apply(
		validator.When(cfg.DefaultLocale != "", validator.ValidLocale("DEFAULT_LOCALE", cfg.DefaultLocale)),
		validator.NonNegativeAmount("QR_SIZE", cfg.QRSize),
		validator.MaxNum("QR_SIZE", cfg.QRSize, 2048),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	env := environment.Parse(cfg.Env)
	logOpts := []logger.Option{
		logger.WithEnvironment(env, cfg.Name),
		logger.WithOutput(o.output),
		logger.WithContextExtractors(locale.LoggerExtractor(), api.RequestIDExtractor()),
	}
	if cfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(logOpts...)

	a := &App{Config: cfg, Env: env, Logger: log}

	skinOpts := []skins.Option{skins.WithLogger(log)}
	if cfg.SkinsDir != "" {
		skinOpts = append(skinOpts, skins.WithFS(os.DirFS(cfg.SkinsDir)))
	}
	reg, err := skins.New(skinOpts...)
	if err != nil {
		return nil, errors.Join(ErrInit, err)
	}
	a.Skins = reg

	renderOpts := []invoice.RendererOption{
		invoice.WithLogger(log),
		invoice.WithDisplayMode(format.ParseDisplayMode(cfg.DisplayMode)),
		invoice.WithDateStyle(format.ParseDateStyle(cfg.DateStyle)),
	}
	if cfg.QRSize > 0 {
		renderOpts = append(renderOpts, invoice.WithPaymentQR(cfg.QRSize))
	}
	a.Renderer = invoice.NewRenderer(reg, renderOpts...)

	a.Sender = o.sender
	if a.Sender == nil {
		if a.Sender, err = newSender(cfg.Email); err != nil {
			return nil, errors.Join(ErrInit, err)
		}
	}
	a.Mailer = invoice.NewMailer(a.Renderer, a.Sender, log)

	a.Storage = o.storage
	if a.Storage == nil {
		if a.Storage, err = storage.New(ctx, cfg.Storage); err != nil {
			return nil, errors.Join(ErrInit, err)
		}
	}

	a.API = api.New(a.Renderer,
		api.WithMailer(a.Mailer),
		api.WithStorage(a.Storage),
		api.WithLogger(log),
		api.WithEnvironment(env),
		api.WithDefaultLocale(cfg.DefaultLocale),
		api.WithMaxBodyBytes(cfg.MaxBodySize),
	)

	log.DebugContext(ctx, "application initialized",
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("postmark", cfg.Email.UsePostmark()),
	)
	return a, nil
}

func newSender(cfg email.Config) (email.EmailSender, error) {
	if cfg.UsePostmark() {
		return email.NewPostmarkClient(cfg)
	}
	return email.NewDevSender(cfg.DevDir), nil
}

// Serve runs the HTTP API until ctx is cancelled or the process is
// signalled.
func (a *App) Serve(ctx context.Context) error {
	srv := httpserver.NewFromConfig(a.Config.HTTP, httpserver.WithLogger(a.Logger))
	return srv.Run(ctx, a.API.Router())
}
