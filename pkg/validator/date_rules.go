package validator

import (
	"fmt"
	"time"
)

// RequiredTime validates that value is not the zero time.
func RequiredTime(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.IsZero()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "date is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// DateNotBefore validates that value falls on or after the calendar day of
// start. Times of day are ignored.
func DateNotBefore(field string, value, start time.Time) Rule {
	return Rule{
		Check: func() bool {
			vy, vm, vd := value.Date()
			sy, sm, sd := start.Date()
			v := time.Date(vy, vm, vd, 0, 0, 0, 0, time.UTC)
			s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
			return !v.Before(s)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("date must not be before %s", start.Format(time.DateOnly)),
			TranslationKey: "validation.date_not_before",
			TranslationValues: map[string]any{
				"field": field,
				"start": start.Format(time.DateOnly),
			},
		},
	}
}
