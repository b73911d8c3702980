package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "otp-netsetting.conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
config_version = "1.1.0"

[general]
  api_listen = "127.0.0.1:9090"
  private_subnets_only = true
  output_filename = "50-cloud-init.yaml"

[devices]
  ethernet = "eth0"
  wifi = "wlan0"
  cellular = "usb0"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.ConfigVersion != "1.1.0" {
		t.Errorf("ConfigVersion = %q, want 1.1.0", cfg.ConfigVersion)
	}
	if cfg.General == nil || cfg.General.APIListen != "127.0.0.1:9090" {
		t.Errorf("unexpected general section: %+v", cfg.General)
	}
	if cfg.Devices == nil || cfg.Devices.Wifi != "wlan0" {
		t.Errorf("unexpected devices section: %+v", cfg.Devices)
	}

	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("ValidateConfig failed on valid config: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.conf"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := writeConfigFile(t, "[general\napi_listen = ")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := Default()

	buf, err := cfg.SerializeConfig()
	if err != nil {
		t.Fatalf("SerializeConfig failed: %v", err)
	}

	path := writeConfigFile(t, buf.String())
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.ConfigVersion != cfg.ConfigVersion {
		t.Errorf("ConfigVersion = %q, want %q", loaded.ConfigVersion, cfg.ConfigVersion)
	}
	if *loaded.General != *cfg.General {
		t.Errorf("General = %+v, want %+v", *loaded.General, *cfg.General)
	}
	if *loaded.Devices != *cfg.Devices {
		t.Errorf("Devices = %+v, want %+v", *loaded.Devices, *cfg.Devices)
	}
}

func TestUpgradeConfigFromLegacy(t *testing.T) {
	path := writeConfigFile(t, `
config_version = "1.0.0"

[general]
  output_filename = "50-cloud-init.yaml"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	upgraded, err := cfg.UpgradeConfig()
	if err != nil {
		t.Fatalf("UpgradeConfig failed: %v", err)
	}
	if !upgraded {
		t.Error("expected upgrade to report changes")
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Errorf("ConfigVersion = %q, want %q", cfg.ConfigVersion, CurrentConfigVersion)
	}
	if cfg.Devices == nil || cfg.Devices.Ethernet != "eth0" {
		t.Errorf("expected default devices after upgrade, got %+v", cfg.Devices)
	}

	// Writing back and reloading keeps the migrated shape.
	if err := cfg.WriteConfig(); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig after write failed: %v", err)
	}
	if reloaded.ConfigVersion != CurrentConfigVersion {
		t.Errorf("reloaded ConfigVersion = %q, want %q", reloaded.ConfigVersion, CurrentConfigVersion)
	}
}

func TestUpgradeConfigMissingVersion(t *testing.T) {
	cfg := &Config{General: &GeneralConfig{OutputFilename: DefaultOutputFilename}}

	upgraded, err := cfg.UpgradeConfig()
	if err != nil {
		t.Fatalf("UpgradeConfig failed: %v", err)
	}
	if !upgraded {
		t.Error("expected upgrade to report changes")
	}
	if cfg.Devices == nil {
		t.Error("expected devices section to be filled in")
	}
}

func TestUpgradeConfigNewerThanBinary(t *testing.T) {
	cfg := &Config{ConfigVersion: "99.0.0"}

	if _, err := cfg.UpgradeConfig(); err == nil {
		t.Fatal("expected error for config newer than binary")
	} else if !strings.Contains(err.Error(), "newer") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpgradeConfigCurrentIsNoop(t *testing.T) {
	cfg := Default()

	upgraded, err := cfg.UpgradeConfig()
	if err != nil {
		t.Fatalf("UpgradeConfig failed: %v", err)
	}
	if upgraded {
		t.Error("expected no changes for current config version")
	}
}

func TestOutputFilenameFallback(t *testing.T) {
	cfg := &Config{}
	if got := cfg.OutputFilename(); got != DefaultOutputFilename {
		t.Errorf("OutputFilename() = %q, want %q", got, DefaultOutputFilename)
	}

	cfg = &Config{General: &GeneralConfig{OutputFilename: "custom.yaml"}}
	if got := cfg.OutputFilename(); got != "custom.yaml" {
		t.Errorf("OutputFilename() = %q, want custom.yaml", got)
	}
}
