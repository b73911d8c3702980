package netplan

// SchemaVersion is the netplan schema version marker written into every document.
const SchemaVersion = 2

// Document is the assembled network configuration. It is created fresh per
// submission and owned by the assembler until handed to the serializer.
type Document struct {
	Network NetworkSection `yaml:"network" json:"network"`
}

// NetworkSection holds the per-class device maps. A USB modem enumerates as
// an ethernet-class device, so cellular fragments live under Ethernets.
type NetworkSection struct {
	Version   int                        `yaml:"version" json:"version"`
	Ethernets map[string]*DeviceFragment `yaml:"ethernets,omitempty" json:"ethernets,omitempty"`
	Wifis     map[string]*DeviceFragment `yaml:"wifis,omitempty" json:"wifis,omitempty"`
}

// DeviceFragment is the configuration sub-document for one network device.
// Field order fixes the key order within a rendered fragment.
type DeviceFragment struct {
	DHCP4          bool                    `yaml:"dhcp4" json:"dhcp4"`
	DHCP4Overrides *DHCP4Overrides         `yaml:"dhcp4-overrides,omitempty" json:"dhcp4-overrides,omitempty"`
	Addresses      []string                `yaml:"addresses,flow,omitempty" json:"addresses,omitempty"`
	Gateway4       string                  `yaml:"gateway4,omitempty" json:"gateway4,omitempty"`
	Nameservers    *Nameservers            `yaml:"nameservers,omitempty" json:"nameservers,omitempty"`
	AccessPoints   map[string]*AccessPoint `yaml:"access-points,omitempty" json:"access-points,omitempty"`
	Optional       bool                    `yaml:"optional,omitempty" json:"optional,omitempty"`
}

// DHCP4Overrides carries the route-metric override that decides default-route
// precedence among multiple DHCP interfaces.
type DHCP4Overrides struct {
	RouteMetric int `yaml:"route-metric" json:"route-metric"`
}

// Nameservers lists DNS server addresses for a manually addressed device.
type Nameservers struct {
	Addresses []string `yaml:"addresses,flow" json:"addresses"`
}

// AccessPoint is the credentials sub-record of one wifi network.
type AccessPoint struct {
	Password string `yaml:"password" json:"password"`
}

// NewDocument returns an empty document shell carrying the schema marker.
func NewDocument() *Document {
	return &Document{Network: NetworkSection{Version: SchemaVersion}}
}

// addEthernet places a fragment under the ethernets map, creating it lazily.
func (d *Document) addEthernet(name string, frag *DeviceFragment) {
	if d.Network.Ethernets == nil {
		d.Network.Ethernets = make(map[string]*DeviceFragment)
	}
	d.Network.Ethernets[name] = frag
}

// addWifi places a fragment under the wifis map, creating it lazily.
func (d *Document) addWifi(name string, frag *DeviceFragment) {
	if d.Network.Wifis == nil {
		d.Network.Wifis = make(map[string]*DeviceFragment)
	}
	d.Network.Wifis[name] = frag
}
