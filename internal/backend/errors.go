package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed covers transport failures and non-2xx responses
	ErrRequestFailed = errors.New("request failed")
	// ErrMalformedPayload is returned when a 2xx body cannot be decoded
	ErrMalformedPayload = errors.New("malformed payload")
)

// RequestError describes a failed call to one backend endpoint
type RequestError struct {
	Method string
	Path   string
	Status int // 0 when no response was received
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: %s (status %d)", e.Method, e.Path, ErrRequestFailed, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, ErrRequestFailed, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Path, ErrRequestFailed)
}

func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequestFailed}
	}
	return []error{ErrRequestFailed, e.Err}
}
