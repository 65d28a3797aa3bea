package skins

import "errors"

var (
	ErrUnknownStyle     = errors.New("unknown style")
	ErrInvalidManifest  = errors.New("invalid skin manifest")
	ErrFailedToReadSkin = errors.New("failed to read skin file")
	ErrFailedToParse    = errors.New("failed to parse skin template")
	ErrMissingSkin      = errors.New("style has no skin")
)
