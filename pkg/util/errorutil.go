package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

// NewRouteNotFound is the dispatcher's default response for unmatched paths.
func NewRouteNotFound(path string) error {
	return NewDomainError("ROUTE_NOT_FOUND", "route not found", http.StatusNotFound, map[string]any{"path": path})
}

// NewMethodNotAllowed reports an unsupported method on a known path.
func NewMethodNotAllowed(method string) error {
	return NewDomainError("METHOD_NOT_ALLOWED", fmt.Sprintf("method %s not allowed", method), http.StatusMethodNotAllowed, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

// NewLookupError reports a cart item that references an unknown product or
// size; surfaced as a client error, never silently defaulted.
func NewLookupError(message string, details map[string]any) error {
	return NewDomainError("LOOKUP_FAILED", message, http.StatusBadRequest, details)
}

// NewEmptyCart reports a checkout attempted against an empty cart.
func NewEmptyCart() error {
	return NewDomainError("EMPTY_CART", "shopping cart is empty", http.StatusBadRequest, nil)
}

// NewProviderError passes an upstream provider failure through to the
// caller, carrying the provider's status and response body.
func NewProviderError(provider string, status int, body map[string]any) error {
	if status < 400 {
		status = http.StatusBadGateway
	}
	return NewDomainError("PROVIDER_ERROR", fmt.Sprintf("%s request failed", provider), status, map[string]any{
		"provider": provider,
		"response": body,
	})
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
