package networking

import (
	"net"
	"strings"

	"github.com/vishvananda/netlink"

	"github.com/babydepdev/otp-network-setting-go/src/internal/selection"
)

type Interface struct {
	netlink.Link
}

func GetInterface(interfaceName string) (*Interface, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return nil, err
	}
	return &Interface{link}, nil
}

func GetInterfaceList() ([]Interface, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, err
	}
	var interfaces []Interface
	for _, link := range links {
		interfaces = append(interfaces, Interface{link})
	}
	return interfaces, nil
}

func (iface *Interface) IsUp() bool {
	return iface.Attrs().Flags&net.FlagUp != 0
}

func (iface *Interface) IsLoopback() bool {
	return iface.Attrs().Flags&net.FlagLoopback != 0
}

func (iface *Interface) AddrsIps() ([]net.IP, error) {
	addrs, err := netlink.AddrList(iface.Link, netlink.FAMILY_ALL)
	if err != nil {
		return nil, err
	}
	var ips []net.IP
	for _, addr := range addrs {
		ips = append(ips, addr.IP)
	}
	return ips, nil
}

// Kind guesses the interface kind from the link name.
func (iface *Interface) Kind() (selection.InterfaceKind, bool) {
	return GuessKind(iface.Attrs().Name)
}

// GuessKind maps kernel naming conventions to an interface kind. The guess
// is a prefill hint for the presentation layer, not authoritative.
func GuessKind(name string) (selection.InterfaceKind, bool) {
	switch {
	case strings.HasPrefix(name, "eth"), strings.HasPrefix(name, "en"):
		return selection.KindEthernet, true
	case strings.HasPrefix(name, "wl"):
		return selection.KindWifi, true
	case strings.HasPrefix(name, "usb"), strings.HasPrefix(name, "wwan"), strings.HasPrefix(name, "ppp"):
		return selection.KindCellular, true
	}
	return "", false
}
