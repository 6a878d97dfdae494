package validator

// Rule is a single check and the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage replaces the default message.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// Apply evaluates all rules and returns ValidationErrors, or nil if every rule passed.
func Apply(rules ...Rule) error {
	if errs := Collect(rules...); len(errs) > 0 {
		return errs
	}
	return nil
}

// Collect evaluates all rules and returns the failures in rule order.
func Collect(rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Check == nil || r.Check() {
			continue
		}
		errs = append(errs, r.Error)
	}
	return errs
}

// Each builds rules for every element of items.
func Each[T any](items []T, fn func(i int, item T) []Rule) []Rule {
	var out []Rule
	for i, item := range items {
		out = append(out, fn(i, item)...)
	}
	return out
}
