package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/babydepdev/otp-network-setting-go/src/internal/selection"
)

// HandlePriorityCheck implements reject-and-notify at selection time: the
// presentation layer probes a candidate value the moment the user picks it,
// before submission. Assembly re-checks uniqueness regardless.
func HandlePriorityCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PriorityCheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteInvalidRequest(w, fmt.Sprintf("Invalid request body: %v", err))
			return
		}

		if !req.Kind.Valid() {
			WriteInvalidRequest(w, "kind is required")
			return
		}

		inChoiceSet := false
		for _, choice := range selection.RouteMetricChoices {
			if req.Priority == choice {
				inChoiceSet = true
				break
			}
		}
		if !inChoiceSet {
			WriteInvalidRequest(w, fmt.Sprintf("priority must be one of %v", selection.RouteMetricChoices))
			return
		}

		registry := selection.NewPriorityRegistryFrom(req.Assignments)
		result := registry.Assign(req.Kind, req.Priority)
		if !result.Accepted {
			WriteConflict(w,
				fmt.Sprintf("priority %d is already assigned to %s", req.Priority, result.ConflictsWith),
				map[string]interface{}{
					"conflicts_with": string(result.ConflictsWith),
				})
			return
		}

		WriteData(w, http.StatusOK, PriorityCheckResponse{Accepted: true})
	}
}
