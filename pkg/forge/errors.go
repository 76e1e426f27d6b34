package forge

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel wrapped by every ArgumentError, so
// callers can separate "bad input caught before any I/O" from transport
// failures with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports input rejected by local validation, before any
// request is made: an unsupported region, size, or PHP version, or a
// missing required field at save time.
type ArgumentError struct {
	msg string
}

func newArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string {
	return e.msg
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// APIError is a non-2xx response from the API. The raw body is kept so
// callers can surface the server's own error message.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("forge: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("forge: unexpected status %d: %s", e.StatusCode, e.Body)
}
