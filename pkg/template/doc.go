// Package template implements the small placeholder language used by
// invoice documents and notification emails.
//
// # Syntax
//
//	{{name}}                       variable, name is ASCII [A-Za-z0-9_]+
//	{{#if name}} ... {{/if}}       conditional block, may nest
//
// There is no escape for a literal "{{"; any "{{...}}" that is not one of
// the forms above is copied to the output unchanged.
//
// # Semantics
//
// A conditional renders its body when the bound flag for its name is true,
// or, when no flag is bound, when the variable of the same name is a
// non-empty string. Otherwise the whole block, markers included, is dropped.
//
// Variables are replaced by their bound values. A variable with no binding
// is written back as the literal token; WithStrictVariables turns that into
// ErrMissingBinding instead.
//
// Values are inserted verbatim. The engine does not escape HTML or convert
// newlines; callers prepare values for their output format.
//
// # Errors
//
// Parse reports malformed conditionals as *SyntaxError, carrying the tag and
// its byte offset:
//
//	_, err := template.Parse("{{#if message}}Note")
//	var se *template.SyntaxError
//	errors.As(err, &se) // se.Tag == "{{#if message}}", se.Offset == 0
//
// Parsed templates are immutable and may be executed concurrently.
package template
