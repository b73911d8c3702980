package api

import (
	"net/http"

	"github.com/babydepdev/otp-network-setting-go/src/internal/config"
	"github.com/babydepdev/otp-network-setting-go/src/internal/selection"
)

// HandleDefaults returns the fixed choice sets the presentation layer
// renders: device names, priority values, interface kinds and addressing
// modes, plus the artifact filename.
func HandleDefaults(cfg *config.Config) http.HandlerFunc {
	devices := cfg.Devices
	if devices == nil {
		devices = config.DefaultDevices()
	}

	resp := DefaultsResponse{
		Devices: map[string]string{
			string(selection.KindEthernet): devices.Ethernet,
			string(selection.KindWifi):     devices.Wifi,
			string(selection.KindCellular): devices.Cellular,
		},
		Priorities: selection.RouteMetricChoices,
		Kinds: []string{
			string(selection.KindEthernet),
			string(selection.KindWifi),
			string(selection.KindCellular),
		},
		Modes: []string{
			string(selection.ModeAuto),
			string(selection.ModeManual),
		},
		Filename: cfg.OutputFilename(),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		WriteData(w, http.StatusOK, resp)
	}
}
