package rating

import "fmt"

// TraceStep is one recorded intermediate value.
type TraceStep struct {
	Stage     string  `json:"stage"`
	Component string  `json:"component,omitempty"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
}

// Trace collects per-stage intermediate values during one computation,
// for the tracerate tool. A nil Trace records nothing.
type Trace struct {
	Steps []TraceStep
}

func (t *Trace) add(stage, component, label string, v float64) {
	if t == nil {
		return
	}
	t.Steps = append(t.Steps, TraceStep{Stage: stage, Component: component, Label: label, Value: v})
}

// Dump renders the steps as aligned text lines.
func (t *Trace) Dump() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.Steps))
	for _, s := range t.Steps {
		comp := s.Component
		if comp == "" {
			comp = "-"
		}
		out = append(out, fmt.Sprintf("%-12s %-10s %-22s %10.4f", s.Stage, comp, s.Label, s.Value))
	}
	return out
}
