package netplan

import "testing"

func TestEthernetAuto(t *testing.T) {
	frag := EthernetAuto(100)

	if !frag.DHCP4 {
		t.Error("Expected dhcp4 true")
	}
	if frag.DHCP4Overrides == nil || frag.DHCP4Overrides.RouteMetric != 100 {
		t.Errorf("Expected route-metric 100, got %+v", frag.DHCP4Overrides)
	}
	if frag.Addresses != nil || frag.Gateway4 != "" || frag.Nameservers != nil {
		t.Errorf("Auto fragment must not carry manual addressing: %+v", frag)
	}
	if frag.Optional {
		t.Error("Ethernet fragment must not be optional")
	}
}

func TestEthernetManual(t *testing.T) {
	frag := EthernetManual("10.0.0.5/24", "10.0.0.1", "1.1.1.1")

	if frag.DHCP4 {
		t.Error("Expected dhcp4 false")
	}
	if frag.DHCP4Overrides != nil {
		t.Error("Manual fragment must not carry dhcp4-overrides")
	}
	if len(frag.Addresses) != 1 || frag.Addresses[0] != "10.0.0.5/24" {
		t.Errorf("Addresses = %v, want [10.0.0.5/24]", frag.Addresses)
	}
	if frag.Gateway4 != "10.0.0.1" {
		t.Errorf("Gateway4 = %q, want 10.0.0.1", frag.Gateway4)
	}
	if frag.Nameservers == nil || len(frag.Nameservers.Addresses) != 1 || frag.Nameservers.Addresses[0] != "1.1.1.1" {
		t.Errorf("Nameservers = %+v, want [1.1.1.1]", frag.Nameservers)
	}
}

func TestWifiAuto(t *testing.T) {
	frag := WifiAuto(200, "home", "secret")

	if !frag.DHCP4 {
		t.Error("Expected dhcp4 true")
	}
	if frag.DHCP4Overrides == nil || frag.DHCP4Overrides.RouteMetric != 200 {
		t.Errorf("Expected route-metric 200, got %+v", frag.DHCP4Overrides)
	}
	ap, ok := frag.AccessPoints["home"]
	if !ok || ap.Password != "secret" {
		t.Errorf("AccessPoints = %+v, want home/secret", frag.AccessPoints)
	}
	if !frag.Optional {
		t.Error("Wifi fragment must be optional")
	}
}

func TestWifiManual(t *testing.T) {
	frag := WifiManual("192.168.0.50/24", "192.168.0.1", "8.8.8.8", "home", "secret")

	if frag.DHCP4 {
		t.Error("Expected dhcp4 false")
	}
	if len(frag.Addresses) != 1 || frag.Addresses[0] != "192.168.0.50/24" {
		t.Errorf("Addresses = %v, want [192.168.0.50/24]", frag.Addresses)
	}
	ap, ok := frag.AccessPoints["home"]
	if !ok || ap.Password != "secret" {
		t.Errorf("AccessPoints = %+v, want home/secret", frag.AccessPoints)
	}
	if !frag.Optional {
		t.Error("Wifi fragment must be optional")
	}
}

func TestCellularAuto(t *testing.T) {
	frag := CellularAuto(300)

	if !frag.DHCP4 {
		t.Error("Expected dhcp4 true")
	}
	if frag.DHCP4Overrides == nil || frag.DHCP4Overrides.RouteMetric != 300 {
		t.Errorf("Expected route-metric 300, got %+v", frag.DHCP4Overrides)
	}
	if frag.AccessPoints != nil || frag.Optional {
		t.Errorf("Cellular fragment must not carry wifi fields: %+v", frag)
	}
}
