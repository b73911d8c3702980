package selection

import "fmt"

// InterfaceKind identifies one of the configurable interface classes.
type InterfaceKind string

const (
	KindEthernet InterfaceKind = "ethernet"
	KindWifi     InterfaceKind = "wifi"
	KindCellular InterfaceKind = "cellular"
)

// EvaluationOrder is the fixed order in which selections are validated and
// assembled into the document.
var EvaluationOrder = []InterfaceKind{KindEthernet, KindWifi, KindCellular}

// ParseInterfaceKind parses s into an InterfaceKind, rejecting unknown values.
func ParseInterfaceKind(s string) (InterfaceKind, error) {
	switch kind := InterfaceKind(s); kind {
	case KindEthernet, KindWifi, KindCellular:
		return kind, nil
	}
	return "", fmt.Errorf("unknown interface kind: %q", s)
}

// Valid returns true if the kind is a member of the closed set.
func (k InterfaceKind) Valid() bool {
	_, err := ParseInterfaceKind(string(k))
	return err == nil
}

// UnmarshalText implements encoding.TextUnmarshaler so that JSON and TOML
// decoding reject unknown kinds instead of carrying invalid string states.
func (k *InterfaceKind) UnmarshalText(text []byte) error {
	parsed, err := ParseInterfaceKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// AddressingMode selects between DHCP and static addressing for an interface.
type AddressingMode string

const (
	ModeAuto   AddressingMode = "auto"
	ModeManual AddressingMode = "manual"
)

// ParseAddressingMode parses s into an AddressingMode, rejecting unknown values.
func ParseAddressingMode(s string) (AddressingMode, error) {
	switch mode := AddressingMode(s); mode {
	case ModeAuto, ModeManual:
		return mode, nil
	}
	return "", fmt.Errorf("unknown addressing mode: %q", s)
}

// Valid returns true if the mode is a member of the closed set.
func (m AddressingMode) Valid() bool {
	_, err := ParseAddressingMode(string(m))
	return err == nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same strictness
// as ParseAddressingMode.
func (m *AddressingMode) UnmarshalText(text []byte) error {
	parsed, err := ParseAddressingMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// InterfaceSelection carries the raw choices the presentation layer collected
// for a single interface kind. Field presence requirements depend on Enabled
// and the effective addressing mode; see SelectionSet.Validate.
type InterfaceSelection struct {
	// Kind is the interface class this selection configures.
	Kind InterfaceKind `json:"kind"`
	// Enabled includes the interface in the generated document.
	Enabled bool `json:"enabled"`
	// Priority is the route-metric priority for automatic addressing.
	Priority *int `json:"priority,omitempty" validate:"omitempty,oneof=100 200 300"`
	// Mode chooses automatic (DHCP) or manual addressing. Ignored for cellular.
	Mode AddressingMode `json:"mode,omitempty"`
	// Address is the static IPv4 address in CIDR notation (manual mode).
	Address string `json:"address,omitempty" validate:"omitempty,ipv4_cidr_strict"`
	// Gateway is the default gateway IPv4 address (manual mode).
	Gateway string `json:"gateway,omitempty" validate:"omitempty,ipv4_addr_strict"`
	// DNS is the nameserver IPv4 address (manual mode).
	DNS string `json:"dns,omitempty" validate:"omitempty,ipv4_addr_strict"`
	// SSID is the access point name (wifi only).
	SSID string `json:"ssid,omitempty" validate:"omitempty,max=32"`
	// Passphrase is the access point passphrase (wifi only).
	Passphrase string `json:"passphrase,omitempty"`
}

// EffectiveMode returns the addressing mode the engine acts on. Cellular
// carries no manual form, so its mode field is ignored.
func (s *InterfaceSelection) EffectiveMode() AddressingMode {
	if s.Kind == KindCellular {
		return ModeAuto
	}
	return s.Mode
}

// SelectionSet is one complete submission: at most one selection per kind.
// It is immutable as far as the engine is concerned; nothing in this package
// mutates it after decoding.
type SelectionSet struct {
	Interfaces []*InterfaceSelection `json:"interfaces"`
}

// ByKind returns the selection for the given kind, or nil if absent.
func (s *SelectionSet) ByKind(kind InterfaceKind) *InterfaceSelection {
	for _, sel := range s.Interfaces {
		if sel != nil && sel.Kind == kind {
			return sel
		}
	}
	return nil
}

// Enabled returns the enabled selections in evaluation order.
func (s *SelectionSet) Enabled() []*InterfaceSelection {
	var enabled []*InterfaceSelection
	for _, kind := range EvaluationOrder {
		if sel := s.ByKind(kind); sel != nil && sel.Enabled {
			enabled = append(enabled, sel)
		}
	}
	return enabled
}
