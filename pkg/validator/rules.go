package validator

import (
	"regexp"
	"strings"
)

// local@domain.tld with no whitespace and exactly one '@'
var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether s has a local@domain.tld shape.
func IsEmail(s string) bool {
	return emailRx.MatchString(s)
}

func required(field string, check func() bool) Rule {
	return Rule{Check: check, Error: ValidationError{Field: field, Message: field + " is required"}}
}

// RequiredString fails when value is empty or whitespace only.
func RequiredString(field, value string) Rule {
	return required(field, func() bool { return strings.TrimSpace(value) != "" })
}

// Required fails when present is false.
func Required(field string, present bool) Rule {
	return required(field, func() bool { return present })
}

// RequiredSlice fails on an empty slice.
func RequiredSlice[T any](field string, value []T) Rule {
	return required(field, func() bool { return len(value) > 0 })
}

// Email fails unless value is a local@domain.tld address. Empty fails too.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(strings.TrimSpace(value)) },
		Error: ValidationError{Field: field, Message: "Invalid email format"},
	}
}

// True fails unless value is true. Used for explicit consent flags.
func True(field string, value bool) Rule {
	return Rule{
		Check: func() bool { return value },
		Error: ValidationError{Field: field, Message: field + " must be accepted"},
	}
}
