package config

// CurrentConfigVersion is the configuration format version this binary writes.
// UpgradeConfig migrates older files forward to it.
const CurrentConfigVersion = "1.1.0"

// DefaultOutputFilename is the name of the generated configuration artifact.
const DefaultOutputFilename = "50-cloud-init.yaml"

type Config struct {
	// ConfigVersion is the configuration file format version (semver).
	ConfigVersion string `toml:"config_version" json:"config_version"`
	// General holds general application settings.
	General *GeneralConfig `toml:"general" json:"general"`
	// Devices holds the device names the generated document uses per interface kind.
	Devices *DevicesConfig `toml:"devices" json:"devices"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// APIListen is the host:port the HTTP API binds to (empty = default).
	APIListen string `toml:"api_listen" json:"api_listen" validate:"hostport_or_empty"`
	// PrivateSubnetsOnly restricts API access to callers from private subnets and loopback.
	PrivateSubnetsOnly bool `toml:"private_subnets_only" json:"private_subnets_only"`
	// OutputFilename is the name of the generated configuration artifact.
	OutputFilename string `toml:"output_filename" json:"output_filename" validate:"required"`
	// Banner is an optional comment template prepended to the artifact.
	// Available variables: {{app}}, {{version}}, {{filename}}.
	Banner string `toml:"banner" json:"banner"`
}

type DevicesConfig struct {
	// Ethernet is the device name used for the wired interface.
	Ethernet string `toml:"ethernet" json:"ethernet" validate:"required,device_name"`
	// Wifi is the device name used for the wireless interface.
	Wifi string `toml:"wifi" json:"wifi" validate:"required,device_name"`
	// Cellular is the device name used for the USB modem interface.
	Cellular string `toml:"cellular" json:"cellular" validate:"required,device_name"`
}

// Default returns the canonical default configuration. Commands use it when
// no configuration file exists on disk.
func Default() *Config {
	return &Config{
		ConfigVersion: CurrentConfigVersion,
		General: &GeneralConfig{
			APIListen:          "127.0.0.1:8080",
			PrivateSubnetsOnly: true,
			OutputFilename:     DefaultOutputFilename,
			Banner:             "Generated by {{app}} {{version}}",
		},
		Devices: DefaultDevices(),
	}
}

// DefaultDevices returns the default device names (eth0/wlan0/usb0).
func DefaultDevices() *DevicesConfig {
	return &DevicesConfig{
		Ethernet: "eth0",
		Wifi:     "wlan0",
		Cellular: "usb0",
	}
}

// OutputFilename returns the configured artifact filename, falling back to
// the default when the general section or the field is absent.
func (c *Config) OutputFilename() string {
	if c.General == nil || c.General.OutputFilename == "" {
		return DefaultOutputFilename
	}
	return c.General.OutputFilename
}
