package selection

// RouteMetricChoices is the fixed set of route-metric priorities the
// presentation layer offers. Lower metrics win default-route selection.
var RouteMetricChoices = []int{100, 200, 300}

// AssignResult reports the outcome of a priority assignment attempt. The
// caller decides how to surface a conflict; nothing is raised here.
type AssignResult struct {
	Accepted      bool
	ConflictsWith InterfaceKind // holder of the conflicting value, set when not accepted
}

// PriorityRegistry tracks which route-metric priority each interface kind
// holds during one submission. A fresh registry is created per submission;
// no state survives across calls.
type PriorityRegistry struct {
	held map[InterfaceKind]int
}

// NewPriorityRegistry creates an empty registry.
func NewPriorityRegistry() *PriorityRegistry {
	return &PriorityRegistry{held: make(map[InterfaceKind]int)}
}

// NewPriorityRegistryFrom creates a registry pre-populated with existing
// assignments, e.g. the presentation layer's current state when probing a
// candidate value.
func NewPriorityRegistryFrom(assignments map[InterfaceKind]int) *PriorityRegistry {
	r := NewPriorityRegistry()
	for kind, value := range assignments {
		r.held[kind] = value
	}
	return r
}

// Assign attempts to hand value to kind. It conflicts only when another kind
// currently holds the exact same value; reassigning a kind over its own
// previous value overwrites silently. Membership in RouteMetricChoices is a
// field-level concern and is not re-checked here.
func (r *PriorityRegistry) Assign(kind InterfaceKind, value int) AssignResult {
	for _, other := range EvaluationOrder {
		if other == kind {
			continue
		}
		if held, ok := r.held[other]; ok && held == value {
			return AssignResult{Accepted: false, ConflictsWith: other}
		}
	}
	r.held[kind] = value
	return AssignResult{Accepted: true}
}

// Value returns the priority currently held by kind.
func (r *PriorityRegistry) Value(kind InterfaceKind) (int, bool) {
	value, ok := r.held[kind]
	return value, ok
}

// Snapshot returns a copy of the current assignments.
func (r *PriorityRegistry) Snapshot() map[InterfaceKind]int {
	snapshot := make(map[InterfaceKind]int, len(r.held))
	for kind, value := range r.held {
		snapshot[kind] = value
	}
	return snapshot
}
