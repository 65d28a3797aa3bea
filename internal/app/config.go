package app

import (
	"github.com/dmitrymomot/invoicekit/pkg/email"
	"github.com/dmitrymomot/invoicekit/pkg/httpserver"
	"github.com/dmitrymomot/invoicekit/pkg/storage"
)

// Config is the application configuration read from the environment.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"invoicekit"`
	LogLevel string `env:"LOG_LEVEL"`

	// DefaultLocale applies to API requests without a usable
	// Accept-Language header. Empty lets the invoice currency decide.
	DefaultLocale string `env:"DEFAULT_LOCALE"`

	DisplayMode string `env:"DISPLAY_MODE" envDefault:"code"`
	DateStyle   string `env:"DATE_STYLE" envDefault:"short"`
	QRSize      int    `env:"QR_SIZE" envDefault:"0"`
	SkinsDir    string `env:"SKINS_DIR"`
	MaxBodySize int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	Email   email.Config      `envPrefix:"EMAIL_"`
	Storage storage.Config    `envPrefix:"STORAGE_"`
	HTTP    httpserver.Config `envPrefix:"HTTP_"`
}
