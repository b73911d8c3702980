package api

import (
	"fmt"
	"net/http"

	"github.com/babydepdev/otp-network-setting-go/src/internal/log"
)

// HandleInterfacesList returns the discovered network links with their
// guessed kinds, for presentation-layer prefill.
func HandleInterfacesList(list InterfaceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		interfaces, err := list()
		if err != nil {
			WriteInternalError(w, fmt.Sprintf("Failed to list interfaces: %v", err))
			return
		}

		infos := make([]InterfaceInfo, 0, len(interfaces))
		for i := range interfaces {
			iface := &interfaces[i]

			info := InterfaceInfo{
				Name:     iface.Attrs().Name,
				Up:       iface.IsUp(),
				Loopback: iface.IsLoopback(),
			}
			if kind, ok := iface.Kind(); ok {
				info.Kind = string(kind)
			}

			if ips, err := iface.AddrsIps(); err != nil {
				log.Warnf("Failed to list addresses of %s: %v", info.Name, err)
			} else {
				for _, ip := range ips {
					info.Addresses = append(info.Addresses, ip.String())
				}
			}

			infos = append(infos, info)
		}

		WriteData(w, http.StatusOK, InterfacesResponse{Interfaces: infos})
	}
}
