package config

import (
	"strings"
	"testing"

	apperrors "github.com/babydepdev/otp-network-setting-go/src/internal/errors"
)

func TestValidateConfigMissingSections(t *testing.T) {
	cfg := &Config{ConfigVersion: CurrentConfigVersion}

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("expected validation errors for empty config")
	}

	msg := err.Error()
	if !strings.Contains(msg, "general") {
		t.Errorf("expected 'general' error, got: %v", msg)
	}
	if !strings.Contains(msg, "devices") {
		t.Errorf("expected 'devices' error, got: %v", msg)
	}
}

func TestValidateConfigBadListenAddress(t *testing.T) {
	cfg := Default()
	cfg.General.APIListen = "not-a-hostport"

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("expected validation error for bad api_listen")
	}
	if !strings.Contains(err.Error(), "api_listen") {
		t.Errorf("expected api_listen in error, got: %v", err)
	}
}

func TestValidateConfigEmptyListenIsAllowed(t *testing.T) {
	cfg := Default()
	cfg.General.APIListen = ""

	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("empty api_listen should be valid: %v", err)
	}
}

func TestValidateConfigDeviceNames(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain ethernet", "eth0", true},
		{"predictable name", "enp3s0", true},
		{"dotted vlan", "eth0.100", true},
		{"uppercase", "ETH0", false},
		{"leading digit", "0eth", false},
		{"empty", "", false},
		{"too long", "interface-name-way-too-long", false},
		{"spaces", "eth 0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Devices.Ethernet = tt.value

			err := cfg.ValidateConfig()
			if tt.valid && err != nil {
				t.Errorf("device name %q should be valid: %v", tt.value, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("device name %q should be rejected", tt.value)
			}
		})
	}
}

func TestValidateConfigDuplicateDeviceNames(t *testing.T) {
	cfg := Default()
	cfg.Devices.Cellular = cfg.Devices.Ethernet

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("expected validation error for duplicate device names")
	}

	verrs, ok := err.(apperrors.ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if !verrs.HasCode(apperrors.ErrCodeConfig) {
		t.Errorf("expected CONFIG_ERROR code, got: %v", verrs)
	}
	if !strings.Contains(verrs.Error(), "duplicate device name") {
		t.Errorf("expected duplicate device name message, got: %v", verrs)
	}
}
