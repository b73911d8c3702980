package errors

import (
	"fmt"
	"strings"
)

// ValidationError represents a single field-level validation error with context.
type ValidationError struct {
	ItemName  string    // Owning item, e.g. the interface kind ("ethernet", "wifi")
	FieldPath string    // Dot-notation field path (e.g. "address", "general.api_listen")
	Code      ErrorCode // Error category (address format, conflict, incomplete, ...)
	Message   string    // Human-readable error message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

// HasCode returns true if any error in the collection carries the given code.
func (ve ValidationErrors) HasCode(code ErrorCode) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}
