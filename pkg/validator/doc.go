// Package validator provides small declarative validation rules used to check
// invoice input before it reaches the renderers.
//
// Every exported helper returns a Rule: a Check func plus a ValidationError
// describing the failure with a translation key. Apply evaluates rules in
// order and aggregates failures into ValidationErrors, which implements error
// and matches ErrValidationFailed with errors.Is.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("number", inv.Number),
//	    validator.ValidCurrencyCode("currency", inv.Currency),
//	    validator.When(inv.Client.Email != "", validator.ValidEmail("client.email", inv.Client.Email)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    _ = verrs.Map() // field -> messages
//	}
//
// Currency codes and locale tags are checked against golang.org/x/text, so
// the set of accepted values matches what the formatters can render.
//
// The package is stateless and goroutine-safe.
package validator
