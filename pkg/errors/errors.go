// Package errors provides a structured error system for rdsctl with error codes, categories, and context.
package errors

import (
	stderr "errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/aws/smithy-go"
)

// ErrorCode represents a structured error code for adapter operations.
type ErrorCode string

const (
	// Configuration Errors
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	ErrCodeConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrCodeConfigSave    ErrorCode = "CONFIG_SAVE"

	// Connection Errors
	ErrCodeNameResolution ErrorCode = "NAME_RESOLUTION"

	// Parameter Errors
	ErrCodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	ErrCodeInvalidParameter ErrorCode = "INVALID_PARAMETER"
	ErrCodeUnknownOperation ErrorCode = "UNKNOWN_OPERATION"

	// Confirmation Errors
	ErrCodeConfirmationRequired ErrorCode = "CONFIRMATION_REQUIRED"
	ErrCodeConfirmationDeclined ErrorCode = "CONFIRMATION_DECLINED"

	// Internal System Errors
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorCategory represents the general category of an error.
type ErrorCategory string

const (
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryConnection    ErrorCategory = "connection"
	CategoryParameter     ErrorCategory = "parameter"
	CategoryConfirmation  ErrorCategory = "confirmation"
	CategoryInternal      ErrorCategory = "internal"

	// CategoryService labels errors returned by the service itself. They
	// pass through unchanged, so no ErrorCode maps to it.
	CategoryService ErrorCategory = "service"
)

// AdapterError represents a structured error with context and metadata.
type AdapterError struct {
	Code     ErrorCode     `json:"code"`
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`

	Context   map[string]string `json:"context,omitempty"`
	Cause     error             `json:"-"`
	Timestamp time.Time         `json:"timestamp"`

	Component string `json:"component"`
	Operation string `json:"operation,omitempty"`

	UserFacing bool `json:"user_facing"`
}

// Error implements the error interface. The cause is appended so the
// original failure stays visible next to the enriched message.
func (e *AdapterError) Error() string {
	var b strings.Builder
	switch {
	case e.Component != "" && e.Operation != "":
		fmt.Fprintf(&b, "[%s:%s] %s: %s", e.Component, e.Operation, e.Code, e.Message)
	case e.Component != "":
		fmt.Fprintf(&b, "[%s] %s: %s", e.Component, e.Code, e.Message)
	default:
		fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause error for error wrapping compatibility.
func (e *AdapterError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error (for errors.Is compatibility).
func (e *AdapterError) Is(target error) bool {
	if adapterErr, ok := target.(*AdapterError); ok {
		return e.Code == adapterErr.Code
	}
	return false
}

// NewError creates a new adapter error with default values.
func NewError(code ErrorCode, message string) *AdapterError {
	return &AdapterError{
		Code:       code,
		Category:   GetCategory(code),
		Message:    message,
		Timestamp:  time.Now(),
		Context:    make(map[string]string),
		UserFacing: IsUserFacingByDefault(code),
	}
}

// GetCategory determines the category based on the error code.
func GetCategory(code ErrorCode) ErrorCategory {
	switch code {
	case ErrCodeInvalidConfig, ErrCodeConfigLoad, ErrCodeConfigSave:
		return CategoryConfiguration
	case ErrCodeNameResolution:
		return CategoryConnection
	case ErrCodeMissingParameter, ErrCodeInvalidParameter, ErrCodeUnknownOperation:
		return CategoryParameter
	case ErrCodeConfirmationRequired, ErrCodeConfirmationDeclined:
		return CategoryConfirmation
	default:
		return CategoryInternal
	}
}

// IsUserFacingByDefault determines if an error should be shown to users.
func IsUserFacingByDefault(code ErrorCode) bool {
	return GetCategory(code) != CategoryInternal
}

// WithContext adds contextual information to an error
func (e *AdapterError) WithContext(key, value string) *AdapterError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithComponent sets the component for an error
func (e *AdapterError) WithComponent(component string) *AdapterError {
	e.Component = component
	return e
}

// WithOperation sets the operation for an error
func (e *AdapterError) WithOperation(operation string) *AdapterError {
	e.Operation = operation
	return e
}

// WithCause sets the underlying cause
func (e *AdapterError) WithCause(cause error) *AdapterError {
	e.Cause = cause
	return e
}

// GetRecommendation returns a user-friendly recommendation for fixing the error
func (e *AdapterError) GetRecommendation() string {
	recommendations := map[ErrorCode]string{
		ErrCodeNameResolution: "The RDS endpoint host name could not be resolved. " +
			"Check the configured region and endpoint override, and your DNS settings.",
		ErrCodeMissingParameter:     "Supply every required parameter; run the command with --help to list them.",
		ErrCodeInvalidParameter:     "Check the parameter value format; run the command with --help for details.",
		ErrCodeUnknownOperation:     "Run 'rdsctl operations' to list the supported operations.",
		ErrCodeConfirmationRequired: "This operation changes or deletes resources. Re-run with --force to proceed without a prompt.",
		ErrCodeConfirmationDeclined: "The operation was not confirmed and nothing was changed.",
		ErrCodeInvalidConfig:        "Check your configuration file syntax and values.",
	}

	if rec, exists := recommendations[e.Code]; exists {
		return rec
	}
	return ""
}

// UserFacingMessage returns a simplified message suitable for end users
func (e *AdapterError) UserFacingMessage() string {
	if !e.UserFacing {
		return "An internal error occurred."
	}
	return e.Message
}

// DetailedDiagnostic returns a comprehensive diagnostic message
func (e *AdapterError) DetailedDiagnostic() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.UserFacingMessage()))
	parts = append(parts, fmt.Sprintf("Code: %s", e.Code))

	if e.Operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.Operation))
	}

	if len(e.Context) > 0 {
		parts = append(parts, "\nContext:")
		for k, v := range e.Context {
			parts = append(parts, fmt.Sprintf("  %s: %s", k, v))
		}
	}

	if rec := e.GetRecommendation(); rec != "" {
		parts = append(parts, "\nRecommendation:")
		parts = append(parts, "  "+rec)
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("\nUnderlying cause: %s", e.Cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// IsCode reports whether err is an AdapterError carrying code.
func IsCode(err error, code ErrorCode) bool {
	var adapterErr *AdapterError
	return stderr.As(err, &adapterErr) && adapterErr.Code == code
}

// CategoryOf returns the category of the first AdapterError in err's chain.
func CategoryOf(err error) (ErrorCategory, bool) {
	var adapterErr *AdapterError
	if stderr.As(err, &adapterErr) {
		return adapterErr.Category, true
	}
	return "", false
}

// IsNameResolution reports whether err was caused by a failed DNS lookup.
func IsNameResolution(err error) bool {
	_, ok := NameResolutionFailure(err)
	return ok
}

// NameResolutionFailure returns the DNS error buried in err, if any. SDK
// errors nest it inside the operation and request-send errors.
func NameResolutionFailure(err error) (*net.DNSError, bool) {
	return asErrorType[*net.DNSError](err)
}

// asErrorType finds the first error of type T in err's chain
func asErrorType[T error](err error) (T, bool) {
	var target T
	ok := stderr.As(err, &target)
	return target, ok
}

// ServiceCode returns the API error code reported by the service, or "".
func ServiceCode(err error) string {
	if apiErr, ok := asErrorType[smithy.APIError](err); ok {
		return apiErr.ErrorCode()
	}
	return ""
}

// requestIDCarrier is implemented by the SDK's HTTP response error.
type requestIDCarrier interface {
	error
	ServiceRequestID() string
}

// ServiceRequestID returns the request id the service assigned to a failed
// call, or "".
func ServiceRequestID(err error) string {
	if carrier, ok := asErrorType[requestIDCarrier](err); ok {
		return carrier.ServiceRequestID()
	}
	return ""
}
