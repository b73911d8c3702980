// Package config handles the application configuration file for otp-netsetting.
//
// This package reads TOML configuration files and provides strongly-typed
// structures for accessing configuration data. It supports automatic migration
// of older configuration versions and validates every field before use.
//
// # Configuration Structure
//
// The configuration file defines:
//   - General settings (API listen address, output artifact filename, banner)
//   - Device names the generated document uses per interface kind
//
// # Example Usage
//
// Loading and validating a configuration file:
//
//	cfg, err := config.LoadConfig("/etc/otp-netsetting/otp-netsetting.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatal(err)
//	}
//
// Commands fall back to config.Default() when no configuration file exists,
// so a config file is never required just to generate a document.
package config
