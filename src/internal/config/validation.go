package config

import (
	"fmt"
	"net"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/babydepdev/otp-network-setting-go/src/internal/errors"
)

// Kernel-style interface name: lowercase, short, no leading digit.
var deviceNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9._-]{0,14}$`)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "hostport_or_empty":
		return "must be in format 'host:port' or empty"
	case "device_name":
		return "must be a short lowercase interface name (e.g., eth0, wlan0)"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("hostport_or_empty", validateHostPortOrEmpty); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("device_name", validateDeviceName); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: host:port format or empty
func validateHostPortOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, _, err := net.SplitHostPort(value)
	return err == nil
}

// Custom validator: kernel-style interface device name
func validateDeviceName(fl validator.FieldLevel) bool {
	return deviceNameRegexp.MatchString(fl.Field().String())
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) apperrors.ValidationErrors {
	var validationErrors apperrors.ValidationErrors

	if validatorErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because of RegisterTagNameFunc
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, apperrors.ValidationError{
				FieldPath: fieldPath,
				Code:      apperrors.ErrCodeConfig,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
