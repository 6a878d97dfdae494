package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPError(t *testing.T) {
	cause := errors.New("smtp refused")
	err := ErrBadRequest("Form validation failed",
		WithErrors("email is required"),
		WithErrors("Invalid email format"),
		WithError(cause),
		WithRequestID("req-1"),
	)

	if err.Error() != "Form validation failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.StatusCode() != http.StatusBadRequest {
		t.Errorf("StatusCode() = %d", err.StatusCode())
	}
	if err.StatusText() != "Bad Request" {
		t.Errorf("StatusText() = %q", err.StatusText())
	}
	if len(err.Errors) != 2 || err.Errors[1] != "Invalid email format" {
		t.Errorf("Errors = %v", err.Errors)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	if err.RequestID != "req-1" {
		t.Errorf("RequestID = %q", err.RequestID)
	}
}

func TestHTTPError_Constructors(t *testing.T) {
	tests := []struct {
		err  *HTTPError
		code int
	}{
		{ErrBadRequest("x"), http.StatusBadRequest},
		{ErrNotFound("x"), http.StatusNotFound},
		{ErrMethodNotAllowed("x"), http.StatusMethodNotAllowed},
		{ErrRequestTooLarge("x"), http.StatusRequestEntityTooLarge},
		{ErrTooManyRequests("x"), http.StatusTooManyRequests},
		{ErrInternal("x"), http.StatusInternalServerError},
		{ErrServiceUnavailable("x"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		if tt.err.Code != tt.code {
			t.Errorf("got %d, want %d", tt.err.Code, tt.code)
		}
	}
}

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", ErrNotFound("gone"))

	if !IsHTTPError(wrapped) {
		t.Fatal("IsHTTPError() = false for wrapped error")
	}
	if he := AsHTTPError(wrapped); he == nil || he.Message != "gone" {
		t.Errorf("AsHTTPError() = %v", he)
	}
	if AsHTTPError(errors.New("plain")) != nil {
		t.Error("AsHTTPError() matched a plain error")
	}
}
