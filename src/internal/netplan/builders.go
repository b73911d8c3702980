package netplan

// Fragment builders are pure constructors, one per interface kind and
// addressing mode. Manual builders assume their inputs already passed the
// strict address checks in the selection package; they never re-validate.

// EthernetAuto builds a DHCP fragment for the wired interface with the given
// route-metric override.
func EthernetAuto(metric int) *DeviceFragment {
	return &DeviceFragment{
		DHCP4:          true,
		DHCP4Overrides: &DHCP4Overrides{RouteMetric: metric},
	}
}

// EthernetManual builds a statically addressed fragment for the wired
// interface. The address is CIDR notation; gateway and dns are plain IPv4.
func EthernetManual(address, gateway, dns string) *DeviceFragment {
	return &DeviceFragment{
		DHCP4:       false,
		Addresses:   []string{address},
		Gateway4:    gateway,
		Nameservers: &Nameservers{Addresses: []string{dns}},
	}
}

// WifiAuto builds a DHCP fragment for the wireless interface. The fragment is
// marked optional so an unreachable access point does not block boot.
func WifiAuto(metric int, ssid, passphrase string) *DeviceFragment {
	return &DeviceFragment{
		DHCP4:          true,
		DHCP4Overrides: &DHCP4Overrides{RouteMetric: metric},
		AccessPoints:   map[string]*AccessPoint{ssid: {Password: passphrase}},
		Optional:       true,
	}
}

// WifiManual builds a statically addressed fragment for the wireless
// interface, carrying the same access-point sub-record as WifiAuto.
func WifiManual(address, gateway, dns, ssid, passphrase string) *DeviceFragment {
	return &DeviceFragment{
		DHCP4:        false,
		Addresses:    []string{address},
		Gateway4:     gateway,
		Nameservers:  &Nameservers{Addresses: []string{dns}},
		AccessPoints: map[string]*AccessPoint{ssid: {Password: passphrase}},
		Optional:     true,
	}
}

// CellularAuto builds a DHCP fragment for the USB modem. Cellular has no
// manual form.
func CellularAuto(metric int) *DeviceFragment {
	return &DeviceFragment{
		DHCP4:          true,
		DHCP4Overrides: &DHCP4Overrides{RouteMetric: metric},
	}
}
