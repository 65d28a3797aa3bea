package template

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is the sentinel wrapped by every *SyntaxError.
	ErrSyntax = errors.New("template syntax error")

	// ErrMissingBinding is returned in strict mode when a referenced
	// variable has no bound value.
	ErrMissingBinding = errors.New("missing template binding")
)

// SyntaxError reports malformed conditional markup: an unterminated
// {{#if name}}, a {{/if}} with no open block, or a broken {{#if}} header.
type SyntaxError struct {
	Tag    string // offending tag as written in the source
	Offset int    // byte offset of the tag in the source
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template: %s %s at offset %d", e.Reason, e.Tag, e.Offset)
}

// Unwrap allows errors.Is(err, ErrSyntax).
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

const (
	reasonUnterminated = "unterminated conditional"
	reasonUnexpected   = "unexpected closing tag"
	reasonMalformed    = "malformed conditional tag"
)
