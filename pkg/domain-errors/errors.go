// Package domainerrors provides code-carrying domain errors. Services and
// models return these so transport layers can translate them into HTTP
// responses without inspecting error strings. Conventionally imported as
// dErrors.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error for transport translation.
type Code string

const (
	// CodeBadRequest covers malformed or undecodable requests.
	CodeBadRequest Code = "bad_request"
	// CodeValidation covers well-formed requests with missing or invalid fields.
	CodeValidation Code = "validation_failed"
	// CodeNotFound covers lookups of entities that do not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict covers state conflicts (duplicate submission, wrong step).
	CodeConflict Code = "conflict"
	// CodeSignature covers failed webhook signature verification.
	CodeSignature Code = "invalid_signature"
	// CodeNotConfigured covers operations that require an integration secret
	// which is absent. Fails fast rather than faking success.
	CodeNotConfigured Code = "not_configured"
	// CodeUnavailable covers transient downstream failures.
	CodeUnavailable Code = "unavailable"
	// CodeRateLimited covers clients exceeding the request allowance.
	CodeRateLimited Code = "rate_limited"
	// CodeInternal is the catch-all for unexpected failures.
	CodeInternal Code = "internal_error"
)

// Error is a domain error with a stable code and a caller-facing message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// HasCode reports whether err, anywhere in its chain, is a domain error with
// the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a domain error code to an HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation, CodeSignature:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeNotConfigured, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
