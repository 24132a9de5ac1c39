package client

import (
	"errors"
	"fmt"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Err classifies a response by HTTP status code. Any status which is not
// explicitly enumerated for an operation is still representable as
// Err(code), so no response can panic the caller.
type Err int

// detail wraps an Err with additional information, typically the offending
// resource identifier or the raw response body.
type detail struct {
	code   Err
	reason string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// ErrConnection indicates a transport-level failure (DNS, TLS, timeout,
	// connection refused) where no HTTP response was received.
	ErrConnection Err = 0

	ErrNotModified          Err = http.StatusNotModified
	ErrBadRequest           Err = http.StatusBadRequest
	ErrNotAuthorized        Err = http.StatusUnauthorized
	ErrForbidden            Err = http.StatusForbidden
	ErrNotFound             Err = http.StatusNotFound
	ErrNotAcceptable        Err = http.StatusNotAcceptable
	ErrUnsupportedMediaType Err = http.StatusUnsupportedMediaType
	ErrInternalError        Err = http.StatusInternalServerError
	ErrUnavailable          Err = http.StatusServiceUnavailable
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	if e == ErrConnection {
		return "connection error"
	}
	if text := http.StatusText(int(e)); text != "" {
		return fmt.Sprintf("%d %s", int(e), text)
	}
	return fmt.Sprintf("unexpected response status %d", int(e))
}

// With returns the error with additional detail, for example the offending
// resource identifier returned to the caller.
func (e Err) With(args ...any) error {
	return &detail{code: e, reason: fmt.Sprint(args...)}
}

// Withf returns the error with formatted detail.
func (e Err) Withf(format string, args ...any) error {
	return &detail{code: e, reason: fmt.Sprintf(format, args...)}
}

// Code returns the HTTP status code carried by an error, 0 for transport
// failures, or -1 when the error carries no classification at all.
func Code(err error) int {
	var e Err
	if errors.As(err, &e) {
		return int(e)
	}
	return -1
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (d *detail) Error() string {
	if d.reason == "" {
		return d.code.Error()
	}
	return d.code.Error() + ": " + d.reason
}

func (d *detail) Unwrap() error {
	return d.code
}
