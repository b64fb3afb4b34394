package mjtrans

import (
	"errors"
	"fmt"
)

// FailureCode classifies translation failures.
type FailureCode string

const (
	// CodeEmptyInput means the source text was empty or whitespace.
	CodeEmptyInput FailureCode = "empty_input"
	// CodeNotConfigured means the provider has no credential.
	CodeNotConfigured FailureCode = "not_configured"
	// CodeInvalidCredentials means the provider rejected the credential.
	CodeInvalidCredentials FailureCode = "invalid_credentials"
	// CodeRateLimited means the provider throttled the request.
	CodeRateLimited FailureCode = "rate_limited"
	// CodeTimeout means the provider call exceeded its deadline.
	CodeTimeout FailureCode = "timeout"
	// CodeProviderUnavailable covers all other upstream failures.
	CodeProviderUnavailable FailureCode = "provider_unavailable"
	// CodeUnsupportedProvider means an unknown provider was requested.
	CodeUnsupportedProvider FailureCode = "unsupported_provider"
)

// TranslationError is the base error type for translation failures.
type TranslationError struct {
	Code    FailureCode
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates an LLM provider failure (auth, rate limit,
// timeout, outage).
type ProviderError struct {
	Provider  Provider
	Code      FailureCode
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// ErrEmptyInput is returned when the source text is empty or whitespace.
var ErrEmptyInput = &TranslationError{
	Code:    CodeEmptyInput,
	Message: "translation text must not be empty",
}

// CodeOf extracts the failure code from err, or CodeProviderUnavailable
// if err carries no code.
func CodeOf(err error) FailureCode {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code
	}
	var te *TranslationError
	if errors.As(err, &te) {
		return te.Code
	}
	return CodeProviderUnavailable
}

// IsNotConfigured reports whether err means a missing credential.
func IsNotConfigured(err error) bool {
	return CodeOf(err) == CodeNotConfigured
}

// IsRateLimited reports whether err is an upstream throttle.
func IsRateLimited(err error) bool {
	return CodeOf(err) == CodeRateLimited
}

// IsConfigProblem reports whether err is a configuration failure rather
// than a transient upstream one. Callers use this to distinguish
// actionable setup errors from "try again later" in user-facing messages.
func IsConfigProblem(err error) bool {
	switch CodeOf(err) {
	case CodeNotConfigured, CodeInvalidCredentials, CodeUnsupportedProvider:
		return true
	}
	return false
}
