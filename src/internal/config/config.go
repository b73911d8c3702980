package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-version"
	"github.com/pelletier/go-toml/v2"

	"github.com/babydepdev/otp-network-setting-go/src/internal/log"
	"github.com/babydepdev/otp-network-setting-go/src/internal/utils"
)

func LoadConfig(configPath string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %v", err)
	}
	configFile := utils.GetAbsolutePath(filepath.Clean(configPath), cwd)

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)

	return &config, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (c *Config) WriteConfig() error {
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644); err != nil {
		return err
	}
	return nil
}

// UpgradeConfig migrates the loaded configuration forward to
// CurrentConfigVersion. It returns true if anything was changed; the caller
// decides whether to write the upgraded file back. A file written by a newer
// binary is an error.
func (c *Config) UpgradeConfig() (bool, error) {
	fileVersionStr := c.ConfigVersion
	if fileVersionStr == "" {
		// Files predating the version marker are treated as the first release.
		fileVersionStr = "1.0.0"
	}

	fileVersion, err := version.NewVersion(fileVersionStr)
	if err != nil {
		return false, fmt.Errorf("invalid config_version %q: %v", c.ConfigVersion, err)
	}

	currentVersion := version.Must(version.NewVersion(CurrentConfigVersion))

	if fileVersion.GreaterThan(currentVersion) {
		return false, fmt.Errorf("configuration version %s is newer than this binary supports (%s)",
			fileVersion, currentVersion)
	}

	upgraded := false

	// 1.0.0 -> 1.1.0: the [devices] table was introduced.
	if fileVersion.LessThan(version.Must(version.NewVersion("1.1.0"))) {
		if c.Devices == nil {
			c.Devices = DefaultDevices()
			log.Infof("Upgrading configuration: adding [devices] table with default device names")
		}
		upgraded = true
	}

	if c.ConfigVersion != CurrentConfigVersion {
		c.ConfigVersion = CurrentConfigVersion
		upgraded = true
	}

	return upgraded, nil
}
