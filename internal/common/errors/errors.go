package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Code identifies the kind of failure an API call produced. The set is
// closed: callers branch on codes instead of probing response shapes.
type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeRateLimited  Code = "TOO_MANY_REQUESTS"
	CodeBackend      Code = "BACKEND_ERROR"
	CodeNetwork      Code = "NETWORK_ERROR"
)

// APIError is the tagged error produced at the HTTP client boundary.
// Message carries the backend's human-readable text when one was returned.
type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"` // HTTP status from the backend, 0 for local errors
	Cause   error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// New creates a new APIError.
func New(code Code, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// Wrap attaches a cause to a new APIError.
func Wrap(err error, code Code, message string) *APIError {
	return &APIError{Code: code, Message: message, Cause: err}
}

// Validation creates a client-side validation error. These never reach the
// network; the message is shown to the operator as-is.
func Validation(message string) *APIError {
	return New(CodeValidation, message)
}

// FromStatus maps a backend HTTP status to an APIError carrying the
// backend's message.
func FromStatus(status int, message string) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}

	var code Code
	switch status {
	case http.StatusBadRequest:
		code = CodeValidation
	case http.StatusUnauthorized:
		code = CodeUnauthorized
	case http.StatusForbidden:
		code = CodeForbidden
	case http.StatusNotFound:
		code = CodeNotFound
	case http.StatusTooManyRequests:
		code = CodeRateLimited
	default:
		code = CodeBackend
	}

	return &APIError{Code: code, Message: message, Status: status}
}

// StatusFor maps an error back to the HTTP status the gateway answers with.
func StatusFor(err error) int {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch apiErr.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeNetwork:
		return http.StatusBadGateway
	default:
		if apiErr.Status >= 400 {
			return apiErr.Status
		}
		return http.StatusInternalServerError
	}
}

// AsAPIError extracts an APIError from anywhere in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func is(err error, code Code) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == code
}

func IsValidation(err error) bool   { return is(err, CodeValidation) }
func IsUnauthorized(err error) bool { return is(err, CodeUnauthorized) }
func IsNotFound(err error) bool     { return is(err, CodeNotFound) }
func IsRateLimited(err error) bool  { return is(err, CodeRateLimited) }

// Message returns the text to surface to the operator: the backend-provided
// message when there is one, otherwise the fallback.
func Message(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
