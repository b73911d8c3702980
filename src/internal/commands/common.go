package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/babydepdev/otp-network-setting-go/src/internal/api"
	"github.com/babydepdev/otp-network-setting-go/src/internal/config"
	"github.com/babydepdev/otp-network-setting-go/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	Version    api.VersionInfo
}

// loadConfigOrDefault loads and validates the configuration file, falling
// back to the built-in defaults when no file exists at configPath. A file
// that exists but fails to parse or validate is an error; silently ignoring
// it would generate documents with the wrong device names.
func loadConfigOrDefault(configPath string) (*config.Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		log.Debugf("No configuration file at %s, using defaults", configPath)
		return config.Default(), nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}
