package colorapi

import (
	"errors"
	"fmt"
)

// Kinds of ServiceRequestError, matchable with errors.Is.
var (
	// ErrTransport means the service could not be reached or answered with a non-success status.
	ErrTransport = errors.New("transport error")
	// ErrDecode means the response body did not match the expected schema.
	ErrDecode = errors.New("decode error")
	// ErrInvalidSpec means the color spec was rejected before any request was made.
	ErrInvalidSpec = errors.New("invalid color spec")
)

// ServiceRequestError is returned by every gateway operation that fails.
type ServiceRequestError struct {
	// URL that was attempted. Empty when the URL could not be built.
	URL string
	// Kind is one of ErrTransport, ErrDecode or ErrInvalidSpec.
	Kind error
	Err  error
}

func (e *ServiceRequestError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Err)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *ServiceRequestError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func requestError(url string, kind, err error) *ServiceRequestError {
	return &ServiceRequestError{URL: url, Kind: kind, Err: err}
}
