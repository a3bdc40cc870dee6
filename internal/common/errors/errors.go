// Package errors provides the standardized error taxonomy for the audit pipeline.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Request validation: required profile field missing. No provider call is made.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Provider credentials invalid or missing. Operator-facing, not retryable.
	ErrCodeAuthConfigInvalid ErrorCode = "AUTH_CONFIG_INVALID"

	// Provider throttling. Retryable by the caller.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"

	// Provider billing/credits exhausted. Fatal until the operator intervenes.
	ErrCodeQuotaExceeded ErrorCode = "QUOTA_EXCEEDED"

	// Provider call exceeded the configured deadline. Retryable by the caller.
	ErrCodeLLMTimeout ErrorCode = "LLM_TIMEOUT"

	// Unclassified provider failure. Retryable by the caller.
	ErrCodeProviderError ErrorCode = "PROVIDER_ERROR"

	// Transactional email dispatch failed. Logged only, never surfaced.
	ErrCodeEmailSendFailed ErrorCode = "EMAIL_SEND_FAILED"

	// Internal signal that structured decoding of model output failed and the
	// synthesized fallback report was used. Never surfaced as a failure.
	ErrCodeParseDegraded ErrorCode = "PARSE_DEGRADED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// Error Constructors
// ==========================

// NewValidationFailedError creates a non-retryable request validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthConfigInvalidError creates a non-retryable provider credentials error.
func NewAuthConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuthConfigInvalid,
		Message:   "Model provider credentials invalid or missing",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitedError creates a retryable provider throttling error.
func NewRateLimitedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRateLimited,
		Message:   "Model provider is throttling requests",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQuotaExceededError creates a non-retryable provider quota error.
func NewQuotaExceededError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQuotaExceeded,
		Message:   "Model provider quota exhausted",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMTimeoutError creates a retryable provider timeout error.
func NewLLMTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMTimeout,
		Message:   "Model provider call exceeded deadline",
		Details:   "generation call exceeded the configured timeout",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderError creates a retryable generic provider error.
func NewProviderError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderError,
		Message:   "Model provider request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailSendFailedError creates a retryable email delivery error. It is
// logged by the pipeline and never returned to the caller.
func NewEmailSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailSendFailed,
		Message:   "Audit report email delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// Utility Functions
// ==========================

// AsStandardError extracts a *StandardError from err, wrapping unknown errors
// as a generic provider error.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewProviderError(err)
}

// HTTPStatus maps an error code to the HTTP status returned at the boundary.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeAuthConfigInvalid:
		return http.StatusInternalServerError
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeQuotaExceeded:
		return http.StatusPaymentRequired
	case ErrCodeLLMTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeProviderError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
