package config

import (
	"fmt"

	apperrors "github.com/babydepdev/otp-network-setting-go/src/internal/errors"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors apperrors.ValidationErrors

	// Validate general config
	if c.General == nil {
		validationErrors = append(validationErrors, apperrors.ValidationError{
			FieldPath: "general",
			Code:      apperrors.ErrCodeConfig,
			Message:   "configuration must contain 'general' section",
		})
	} else if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general")...)
	}

	// Validate devices config
	if c.Devices == nil {
		validationErrors = append(validationErrors, apperrors.ValidationError{
			FieldPath: "devices",
			Code:      apperrors.ErrCodeConfig,
			Message:   "configuration must contain 'devices' section (run 'upgrade-config' to migrate older files)",
		})
	} else {
		if err := validate.Struct(c.Devices); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "devices")...)
		}
		validationErrors = append(validationErrors, c.validateDeviceUniqueness()...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// validateDeviceUniqueness rejects two interface kinds mapped to the same
// device name; the document keys fragments by device name, so a collision
// would silently merge fragments.
func (c *Config) validateDeviceUniqueness() apperrors.ValidationErrors {
	var validationErrors apperrors.ValidationErrors

	seenNames := make(map[string]string)
	for _, dev := range []struct {
		field string
		name  string
	}{
		{"devices.ethernet", c.Devices.Ethernet},
		{"devices.wifi", c.Devices.Wifi},
		{"devices.cellular", c.Devices.Cellular},
	} {
		if dev.name == "" {
			continue
		}
		if other, ok := seenNames[dev.name]; ok {
			validationErrors = append(validationErrors, apperrors.ValidationError{
				FieldPath: dev.field,
				Code:      apperrors.ErrCodeConfig,
				Message:   fmt.Sprintf("duplicate device name %q (already used by %s)", dev.name, other),
			})
		}
		seenNames[dev.name] = dev.field
	}

	return validationErrors
}
