package api

import (
	"encoding/json"
	"net/http"

	"github.com/babydepdev/otp-network-setting-go/src/internal/selection"
)

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// WriteData writes a successful JSON response wrapped in the data envelope.
func WriteData(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// FieldError is one field-level validation failure as reported to the
// presentation layer for per-field display.
type FieldError struct {
	Interface string `json:"interface,omitempty"`
	Field     string `json:"field"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// ValidateResponse reports a submission that passed validation.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// PriorityCheckRequest probes whether a candidate priority value would
// conflict with the presentation layer's current assignments.
type PriorityCheckRequest struct {
	Kind        selection.InterfaceKind         `json:"kind"`
	Priority    int                             `json:"priority"`
	Assignments map[selection.InterfaceKind]int `json:"assignments,omitempty"`
}

// PriorityCheckResponse reports an accepted priority assignment.
type PriorityCheckResponse struct {
	Accepted bool `json:"accepted"`
}

// InterfaceInfo describes one discovered network link.
type InterfaceInfo struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind,omitempty"`
	Up        bool     `json:"up"`
	Loopback  bool     `json:"loopback"`
	Addresses []string `json:"addresses,omitempty"`
}

// InterfacesResponse returns the discovered network links.
type InterfacesResponse struct {
	Interfaces []InterfaceInfo `json:"interfaces"`
}

// DefaultsResponse returns the fixed choice sets the presentation layer renders.
type DefaultsResponse struct {
	Devices    map[string]string `json:"devices"`
	Priorities []int             `json:"priorities"`
	Kinds      []string          `json:"kinds"`
	Modes      []string          `json:"modes"`
	Filename   string            `json:"filename"`
}
