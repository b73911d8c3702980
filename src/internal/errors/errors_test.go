package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "invalid configuration"},
			expected: "[CONFIG_ERROR] invalid configuration",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeDocument, "failed to assemble document", errors.New("no enabled interfaces")),
			expected: "[DOCUMENT_ERROR] failed to assemble document: no enabled interfaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeConfig, Message: "test error"}
	err2 := &Error{Code: ErrCodeConfig, Message: "another error"}
	err3 := &Error{Code: ErrCodePriorityConflict, Message: "conflict error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestNewConfigError(t *testing.T) {
	cause := errors.New("file not found")
	err := NewConfigError("failed to load config", cause)

	if err.Code != ErrCodeConfig {
		t.Errorf("Expected code %v, got %v", ErrCodeConfig, err.Code)
	}

	if err.Message != "failed to load config" {
		t.Errorf("Expected message 'failed to load config', got %v", err.Message)
	}

	if err.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	ve := ValidationErrors{
		{ItemName: "wifi", FieldPath: "address", Code: ErrCodeAddressFormat, Message: "must be a valid IPv4 CIDR"},
		{FieldPath: "general.api_listen", Code: ErrCodeConfig, Message: "must be in format 'host:port' or empty"},
	}

	rendered := ve.Error()
	if !strings.Contains(rendered, "validation failed with 2 error(s)") {
		t.Errorf("Missing error count header: %s", rendered)
	}
	if !strings.Contains(rendered, "1. [wifi] address: must be a valid IPv4 CIDR") {
		t.Errorf("Missing item-qualified line: %s", rendered)
	}
	if !strings.Contains(rendered, "2. general.api_listen: must be in format 'host:port' or empty") {
		t.Errorf("Missing bare-field line: %s", rendered)
	}
}

func TestValidationErrors_ErrorEmpty(t *testing.T) {
	var ve ValidationErrors

	if got := ve.Error(); got != "no validation errors" {
		t.Errorf("Unexpected empty rendering: %s", got)
	}
}

func TestValidationErrors_HasCode(t *testing.T) {
	ve := ValidationErrors{
		{ItemName: "cellular", FieldPath: "priority", Code: ErrCodePriorityConflict, Message: "duplicate priority"},
	}

	if !ve.HasCode(ErrCodePriorityConflict) {
		t.Error("Expected HasCode to find PRIORITY_CONFLICT")
	}
	if ve.HasCode(ErrCodeAddressFormat) {
		t.Error("Expected HasCode to not find ADDRESS_FORMAT_ERROR")
	}
}
