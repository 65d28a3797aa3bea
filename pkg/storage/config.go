package storage

import (
	"context"
	"fmt"
	"strings"
)

// Drivers accepted by New.
const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config selects and configures a backend. Field tags carry no prefix;
// the application config nests it under STORAGE_.
type Config struct {
	Driver         string `env:"DRIVER" envDefault:"local"`
	Dir            string `env:"DIR" envDefault:"./tmp/documents"`
	BaseURL        string `env:"BASE_URL" envDefault:"/archive/"`
	Bucket         string `env:"BUCKET"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_KEY"`
	Endpoint       string `env:"ENDPOINT"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE" envDefault:"false"`
}

// New builds the backend named by cfg.Driver. Extra S3 options apply only
// to the s3 driver.
func New(ctx context.Context, cfg Config, opts ...S3Option) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverLocal:
		return NewLocalStorage(cfg.Dir, cfg.BaseURL)
	case DriverS3:
		baseURL := cfg.BaseURL
		if strings.HasPrefix(baseURL, "/") {
			// a path-only prefix is meaningless for a bucket
			baseURL = ""
		}
		return NewS3Storage(ctx, S3Config{
			Bucket:         cfg.Bucket,
			Region:         cfg.Region,
			AccessKeyID:    cfg.AccessKeyID,
			SecretKey:      cfg.SecretKey,
			Endpoint:       cfg.Endpoint,
			BaseURL:        baseURL,
			ForcePathStyle: cfg.ForcePathStyle,
		}, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
