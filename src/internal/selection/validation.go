package selection

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/babydepdev/otp-network-setting-go/src/internal/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("ipv4_addr_strict", validateIPv4AddrTag); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("ipv4_cidr_strict", validateIPv4CIDRTag); err != nil {
		panic(err)
	}

	// Register function to get field name from "json" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: strict plain IPv4 literal
func validateIPv4AddrTag(fl validator.FieldLevel) bool {
	return ValidateAddress(fl.Field().String(), false)
}

// Custom validator: strict IPv4 literal with CIDR prefix
func validateIPv4CIDRTag(fl validator.FieldLevel) bool {
	return ValidateAddress(fl.Field().String(), true)
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "ipv4_addr_strict":
		return "must be a plain IPv4 address (four octets 0-255)"
	case "ipv4_cidr_strict":
		return "must be an IPv4 address with a /0-32 prefix length"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// codeForTag maps a validator tag to the domain error code reported for it.
func codeForTag(tag string) errors.ErrorCode {
	switch tag {
	case "ipv4_addr_strict", "ipv4_cidr_strict":
		return errors.ErrCodeAddressFormat
	case "required":
		return errors.ErrCodeIncompleteSelection
	default:
		return errors.ErrCodeValidation
	}
}

// convertValidatorErrors converts go-playground/validator errors to our
// field-level ValidationError format.
func convertValidatorErrors(err error, itemName string) errors.ValidationErrors {
	var validationErrors errors.ValidationErrors

	if validatorErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validatorErrs {
			// e.Field() returns the JSON tag name because of RegisterTagNameFunc
			validationErrors = append(validationErrors, errors.ValidationError{
				ItemName:  itemName,
				FieldPath: e.Field(),
				Code:      codeForTag(e.Tag()),
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// Validate checks the whole submission and aggregates every problem into a
// single errors.ValidationErrors result: per-field address formats, the
// priority choice set, mode-specific completeness, duplicate kinds and
// priority uniqueness across enabled interfaces. Callers must treat any
// returned error as all-or-nothing; a set that failed validation is never
// assembled.
func (s *SelectionSet) Validate() error {
	var validationErrors errors.ValidationErrors

	seenKinds := make(map[InterfaceKind]bool)

	for i, sel := range s.Interfaces {
		if sel == nil {
			validationErrors = append(validationErrors, errors.ValidationError{
				FieldPath: fmt.Sprintf("interfaces.%d", i),
				Code:      errors.ErrCodeValidation,
				Message:   "selection must not be null",
			})
			continue
		}

		itemName := string(sel.Kind)
		if itemName == "" {
			itemName = fmt.Sprintf("interfaces[%d]", i)
		}

		if !sel.Kind.Valid() {
			validationErrors = append(validationErrors, errors.ValidationError{
				ItemName:  itemName,
				FieldPath: "kind",
				Code:      errors.ErrCodeValidation,
				Message:   fmt.Sprintf("unknown interface kind: %q", string(sel.Kind)),
			})
			continue
		}

		// Check duplicate kind
		if seenKinds[sel.Kind] {
			validationErrors = append(validationErrors, errors.ValidationError{
				ItemName:  itemName,
				FieldPath: "kind",
				Code:      errors.ErrCodeValidation,
				Message:   fmt.Sprintf("duplicate selection for interface kind: %s", sel.Kind),
			})
		}
		seenKinds[sel.Kind] = true

		// Disabled interfaces carry no obligations
		if !sel.Enabled {
			continue
		}

		// Validate field formats on the mode-relevant fields
		if err := validate.Struct(sel.forValidation()); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, itemName)...)
		}

		validationErrors = append(validationErrors, sel.validateCompleteness(itemName)...)
	}

	// Priority uniqueness across enabled interfaces, fixed evaluation order
	registry := NewPriorityRegistry()
	for _, kind := range EvaluationOrder {
		sel := s.ByKind(kind)
		if sel == nil || !sel.Enabled || sel.Priority == nil {
			continue
		}
		if result := registry.Assign(kind, *sel.Priority); !result.Accepted {
			validationErrors = append(validationErrors, errors.ValidationError{
				ItemName:  string(kind),
				FieldPath: "priority",
				Code:      errors.ErrCodePriorityConflict,
				Message:   fmt.Sprintf("priority %d is already assigned to %s", *sel.Priority, result.ConflictsWith),
			})
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// forValidation returns a copy with the fields the effective mode ignores
// blanked out. The presentation layer keeps stale text in hidden fields; a
// value the document will never use must not fail the submission.
func (s *InterfaceSelection) forValidation() *InterfaceSelection {
	c := *s
	if c.EffectiveMode() == ModeAuto {
		c.Address = ""
		c.Gateway = ""
		c.DNS = ""
	}
	return &c
}

// validateCompleteness checks the invariants between mode and field presence
// that struct tags cannot express.
func (s *InterfaceSelection) validateCompleteness(itemName string) errors.ValidationErrors {
	var validationErrors errors.ValidationErrors

	missing := func(field, message string) {
		validationErrors = append(validationErrors, errors.ValidationError{
			ItemName:  itemName,
			FieldPath: field,
			Code:      errors.ErrCodeIncompleteSelection,
			Message:   message,
		})
	}

	switch mode := s.EffectiveMode(); {
	case !mode.Valid():
		missing("mode", "addressing mode must be auto or manual")
	case mode == ModeManual:
		if s.Address == "" {
			missing("address", "manual addressing requires an address")
		}
		if s.Gateway == "" {
			missing("gateway", "manual addressing requires a gateway")
		}
		if s.DNS == "" {
			missing("dns", "manual addressing requires a DNS server")
		}
	case mode == ModeAuto:
		if s.Priority == nil {
			missing("priority", "automatic addressing requires a priority")
		}
	}

	if s.Kind == KindWifi {
		if s.SSID == "" {
			missing("ssid", "wifi requires an access point name")
		}
		if s.Passphrase == "" {
			missing("passphrase", "wifi requires an access point passphrase")
		}
	}

	return validationErrors
}
