package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProduct    = errors.New("invalid product data")
	ErrUnsupportedMethod = errors.New("unsupported method")
)

// UpstreamError is a non-200 answer from the catalog service.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Body)
}

// TransportError means the catalog service could not be reached at all.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("an error occurred while requesting %s %q: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
