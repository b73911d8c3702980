// Package errors provides domain-specific error types for otp-netsetting.
//
// This package defines structured errors with error codes, making it easier to
// handle and test different error conditions consistently across the application.
// It also hosts the field-level ValidationError aggregation shared by the
// selection and config validators.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates an application configuration file error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a generic validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeAddressFormat indicates an address, gateway or DNS literal that
	// fails the strict IPv4/CIDR pattern check.
	ErrCodeAddressFormat ErrorCode = "ADDRESS_FORMAT_ERROR"

	// ErrCodePriorityConflict indicates a route-metric priority already held
	// by another enabled interface.
	ErrCodePriorityConflict ErrorCode = "PRIORITY_CONFLICT"

	// ErrCodeIncompleteSelection indicates an interface selection missing
	// fields its addressing mode requires.
	ErrCodeIncompleteSelection ErrorCode = "INCOMPLETE_SELECTION"

	// ErrCodeInterface indicates an error related to network interface discovery.
	ErrCodeInterface ErrorCode = "INTERFACE_ERROR"

	// ErrCodeDocument indicates an error assembling or serializing the
	// network configuration document.
	ErrCodeDocument ErrorCode = "DOCUMENT_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewInterfaceError creates a new interface discovery error.
func NewInterfaceError(message string, cause error) *Error {
	return Wrap(ErrCodeInterface, message, cause)
}

// NewDocumentError creates a new document assembly or serialization error.
func NewDocumentError(message string, cause error) *Error {
	return Wrap(ErrCodeDocument, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
