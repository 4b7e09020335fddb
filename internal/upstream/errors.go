package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError is a network-level failure: the remote never produced a response.
type TransportError struct {
	Service string
	Method  string
	URL     string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError is a remote answer with an unexpected status.
type RemoteError struct {
	Service    string
	StatusCode int
	Body       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s service responded with status %d", e.Service, e.StatusCode)
}

// Unauthorized reports whether the remote rejected the credential.
func (e *RemoteError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// AsRemoteError converts a response into a *RemoteError.
func AsRemoteError(service string, resp *Response) *RemoteError {
	return &RemoteError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}
}

// IsTransport reports whether err is (or wraps) a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
