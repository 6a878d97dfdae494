package submission

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownKind    = errors.New("unknown form kind")
	ErrCatalogInvalid = errors.New("invalid message catalog")
)

// StructuralError means the request envelope itself is unusable: formData,
// pdfContent or the admin recipient is missing, or a payload cannot be decoded.
type StructuralError struct {
	Err     error
	Message string
	Missing []string
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StructuralError) Unwrap() error { return e.Err }

// ValidationError carries every field rule the form violated, in rule order.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "form validation failed: " + strings.Join(e.Errors, "; ")
}

// DispatchError means the mail transport did not accept a message. Reason is
// for logs and never shown to callers.
type DispatchError struct {
	Role      Role
	Recipient string
	Reason    string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s notification to %s not delivered: %s", e.Role, e.Recipient, e.Reason)
}

// IsStructural reports whether err is a StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

// AsValidation extracts a ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// IsDispatch reports whether err is a DispatchError.
func IsDispatch(err error) bool {
	var de *DispatchError
	return errors.As(err, &de)
}
