package submission

import (
	"slices"

	"github.com/pacam/formrelay/pkg/validator"
)

// ValidationResult is the outcome of checking a form. It is computed in one
// pass and not modified afterwards.
type ValidationResult struct {
	Errors []string `json:"errors"`
	Valid  bool     `json:"valid"`
}

// Validate evaluates every rule of form and reports all failures together.
// Fields that arrived with the wrong JSON type come first, once each; their
// own rule failures are folded into that entry.
func Validate(form Form) ValidationResult {
	mismatched := form.mismatched()
	msgs := make([]string, 0, len(mismatched))
	for _, name := range mismatched {
		msgs = append(msgs, name+" has an invalid value")
	}
	for _, ve := range validator.Collect(form.rules()...) {
		if slices.Contains(mismatched, ve.Field) {
			continue
		}
		msgs = append(msgs, ve.Message)
	}
	return ValidationResult{Valid: len(msgs) == 0, Errors: msgs}
}

// Err returns the result as a *ValidationError, or nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}
