package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the closed set of failure categories surfaced by the API
type ErrorKind string

const (
	KindInvalidInput     ErrorKind = "invalid_input"
	KindUnauthenticated  ErrorKind = "unauthenticated"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindNotFound         ErrorKind = "not_found"
	KindConflict         ErrorKind = "conflict"
	KindNoEligibleLeg    ErrorKind = "no_eligible_leg"
	KindInternal         ErrorKind = "internal"
)

// AppError carries a kind, a caller-facing message, an optional offending
// field, and the wrapped cause for server-side logs.
type AppError struct {
	Kind    ErrorKind
	Message string
	Field   string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPStatus maps the error kind to a response status code
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindNoEligibleLeg:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NewInvalidInput(field, message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Field: field, Message: message}
}

func NewUnauthenticated(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func NewPermissionDenied(message string) *AppError {
	return &AppError{Kind: KindPermissionDenied, Message: message}
}

func NewNotFound(resource string, id interface{}) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, id),
	}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewNoEligibleLeg(message string) *AppError {
	return &AppError{Kind: KindNoEligibleLeg, Message: message}
}

func NewInternal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf extracts the ErrorKind from err, defaulting to KindInternal
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// AsAppError unwraps err into an *AppError, wrapping foreign errors as internal
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}
