package netplan

import (
	"fmt"

	"github.com/babydepdev/otp-network-setting-go/src/internal/config"
	"github.com/babydepdev/otp-network-setting-go/src/internal/errors"
	"github.com/babydepdev/otp-network-setting-go/src/internal/selection"
)

// Assembler turns a validated selection set into one document. It carries no
// state between calls besides the configured device names.
type Assembler struct {
	devices *config.DevicesConfig
}

// NewAssembler creates an assembler bound to the given device names. A nil
// devices config falls back to the defaults (eth0/wlan0/usb0).
func NewAssembler(devices *config.DevicesConfig) *Assembler {
	if devices == nil {
		devices = config.DefaultDevices()
	}
	return &Assembler{devices: devices}
}

// Assemble validates the whole selection set and builds the document.
//
// Validation happens before any fragment is built, so a set with any invalid
// field produces no document at all. Enabled interfaces are processed in the
// fixed evaluation order (ethernet, wifi, cellular).
//
// Ethernet and cellular fragments are both placed under the ethernets map:
// the USB modem enumerates as an ethernet-class device. When both are
// enabled they coexist as siblings keyed by their device names, ethernet
// keeping whichever addressing mode was selected and cellular always on
// DHCP. The map placement makes the combined section supersede any solitary
// cellular form structurally; there is no separate merge step to get wrong.
func (a *Assembler) Assemble(set *selection.SelectionSet) (*Document, error) {
	if set == nil {
		return nil, errors.New(errors.ErrCodeValidation, "selection set is required")
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	doc := NewDocument()

	for _, sel := range set.Enabled() {
		frag, err := a.buildFragment(sel)
		if err != nil {
			return nil, err
		}

		switch sel.Kind {
		case selection.KindEthernet:
			doc.addEthernet(a.devices.Ethernet, frag)
		case selection.KindCellular:
			doc.addEthernet(a.devices.Cellular, frag)
		case selection.KindWifi:
			doc.addWifi(a.devices.Wifi, frag)
		}
	}

	return doc, nil
}

// buildFragment dispatches to the matching pure builder. The selection has
// already passed Validate, so the mode-required fields are present.
func (a *Assembler) buildFragment(sel *selection.InterfaceSelection) (*DeviceFragment, error) {
	mode := sel.EffectiveMode()

	switch sel.Kind {
	case selection.KindEthernet:
		if mode == selection.ModeManual {
			return EthernetManual(sel.Address, sel.Gateway, sel.DNS), nil
		}
		return EthernetAuto(*sel.Priority), nil

	case selection.KindWifi:
		if mode == selection.ModeManual {
			return WifiManual(sel.Address, sel.Gateway, sel.DNS, sel.SSID, sel.Passphrase), nil
		}
		return WifiAuto(*sel.Priority, sel.SSID, sel.Passphrase), nil

	case selection.KindCellular:
		return CellularAuto(*sel.Priority), nil
	}

	return nil, errors.New(errors.ErrCodeDocument,
		fmt.Sprintf("no builder for interface kind %q", sel.Kind))
}
