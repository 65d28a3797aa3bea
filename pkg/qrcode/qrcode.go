package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent     = errors.New("qr content cannot be empty")
	ErrContentTooLong   = errors.New("qr content too long")
	ErrFailedToGenerate = errors.New("failed to generate qr code")
)

const (
	dataURIPrefix    = "data:image/png;base64,"
	defaultSize      = 256
	defaultRecovery  = skipqrcode.Medium
	maxContentLength = 2048
)

// Option adjusts image generation.
type Option func(*options)

type options struct {
	size     int
	recovery skipqrcode.RecoveryLevel
}

// WithSize sets the image width and height in pixels. Non-positive
// values keep the default of 256.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithHighRecovery raises error correction, useful when the code is
// printed small or on paper.
func WithHighRecovery() Option {
	return func(o *options) {
		o.recovery = skipqrcode.High
	}
}

// Generate encodes content as a PNG QR code.
func Generate(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if len(content) > maxContentLength {
		return nil, ErrContentTooLong
	}

	o := options{size: defaultSize, recovery: defaultRecovery}
	for _, opt := range opts {
		opt(&o)
	}

	png, err := skipqrcode.Encode(content, o.recovery, o.size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	return png, nil
}

// DataURI encodes content as a PNG QR code wrapped in a data URI, ready
// for an <img src> attribute in a rendered invoice.
func DataURI(content string, opts ...Option) (string, error) {
	png, err := Generate(content, opts...)
	if err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png), nil
}
