package format

import "errors"

// ErrInvalidDate is returned by ParseDate for input that is not an ISO 8601 date.
// Formatting functions never return it; they echo the input instead.
var ErrInvalidDate = errors.New("invalid ISO 8601 date")
