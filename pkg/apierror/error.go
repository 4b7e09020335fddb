package apierror

import (
	"encoding/json"
	"net/http"
)

// Error represents a structured API error response.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"error"`

	// Upstream diagnostics, passed through when a remote service rejected the call.
	UpstreamStatus int             `json:"status,omitempty"`
	UpstreamBody   json.RawMessage `json:"response,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// WithUpstream attaches the remote status code and body for diagnosis.
func (e *Error) WithUpstream(status int, body []byte) *Error {
	e.UpstreamStatus = status
	e.UpstreamBody = asJSON(body)
	return e
}

// ToJSON converts the error to JSON bytes.
func (e *Error) ToJSON() []byte {
	data, _ := json.Marshal(e)
	return data
}

// asJSON keeps valid JSON bodies as-is and quotes anything else.
func asJSON(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}

// BadRequest creates a 400 Bad Request error.
func BadRequest(message string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       "BAD_REQUEST",
		Message:    message,
	}
}

// MissingCredential creates a 400 error for an absent or malformed bearer token.
func MissingCredential() *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       "MISSING_CREDENTIAL",
		Message:    "Proper auth not found. Please enter Bearer token in headers.",
	}
}

// MissingParameter creates a 400 error naming the missing field.
func MissingParameter(message string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       "MISSING_PARAMETER",
		Message:    message,
	}
}

// Unauthorized creates a 401 Unauthorized error.
func Unauthorized(message string) *Error {
	if message == "" {
		message = "Invalid or expired access token."
	}
	return &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       "UNAUTHORIZED",
		Message:    message,
	}
}

// Forbidden creates a 403 Forbidden error.
func Forbidden(message string) *Error {
	if message == "" {
		message = "Access denied"
	}
	return &Error{
		StatusCode: http.StatusForbidden,
		Code:       "FORBIDDEN",
		Message:    message,
	}
}

// NotFound creates a 404 Not Found error.
func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{
		StatusCode: http.StatusNotFound,
		Code:       "NOT_FOUND",
		Message:    message,
	}
}

// Remote creates an error that mirrors a remote service's status code.
func Remote(status int, message string, body []byte) *Error {
	e := &Error{
		StatusCode: status,
		Code:       "REMOTE_ERROR",
		Message:    message,
	}
	return e.WithUpstream(status, body)
}

// InternalError creates a 500 Internal Server Error.
func InternalError(message string) *Error {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &Error{
		StatusCode: http.StatusInternalServerError,
		Code:       "INTERNAL_ERROR",
		Message:    message,
	}
}
