package types

import "fmt"

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeState      ErrorType = "state"
	ErrorTypeInternal   ErrorType = "internal"
)

// PortalError represents a structured error in the portal core.
// All portal errors are non-fatal; callers surface them as refused operations.
type PortalError struct {
	Type    ErrorType              `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *PortalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *PortalError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(code, message string, details map[string]interface{}) *PortalError {
	return &PortalError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(code, message string) *PortalError {
	return &PortalError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(code, message string) *PortalError {
	return &PortalError{
		Type:    ErrorTypeConflict,
		Code:    code,
		Message: message,
	}
}

// NewStateError creates a new invalid state transition error
func NewStateError(code, message string) *PortalError {
	return &PortalError{
		Type:    ErrorTypeState,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(code, message string, cause error) *PortalError {
	return &PortalError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error codes
const (
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeEmptyMessage       = "EMPTY_MESSAGE"
	ErrCodeUnknownAppointment = "UNKNOWN_APPOINTMENT"
	ErrCodeUnknownArticle     = "UNKNOWN_ARTICLE"
	ErrCodeUnknownScreen      = "UNKNOWN_SCREEN"
	ErrCodeUnknownTab         = "UNKNOWN_TAB"
	ErrCodeInvalidCategory    = "INVALID_CATEGORY"
	ErrCodeInvalidRole        = "INVALID_ROLE"
	ErrCodeNoRoleSelected     = "NO_ROLE_SELECTED"
	ErrCodeAlreadyFinal       = "ALREADY_FINAL"
	ErrCodeLoginPending       = "LOGIN_PENDING"
	ErrCodeTokenSigning       = "TOKEN_SIGNING"
)
