package rating

import "fmt"

// TablePolicy selects how a Table resolves values between breakpoints.
type TablePolicy int

const (
	// PolicyInterpolate draws straight lines between breakpoints and
	// clamps flat beyond the endpoints.
	PolicyInterpolate TablePolicy = iota
	// PolicyStepCeil returns the value of the first breakpoint at or above
	// the key; beyond the last breakpoint, the last value.
	PolicyStepCeil
	// PolicyStepFloor returns the value of the last breakpoint at or below
	// the key; below the first breakpoint, the first value.
	PolicyStepFloor
)

// Breakpoint is one (threshold, value) pair.
type Breakpoint struct {
	At    float64
	Value float64
}

// Table is an ordered breakpoint table with a lookup policy. Tables are
// built once at package init and never mutated.
type Table struct {
	policy TablePolicy
	points []Breakpoint
}

// NewTable builds a table from breakpoints ordered by ascending threshold.
// Misordered tables are programmer errors and panic at init.
func NewTable(policy TablePolicy, points ...Breakpoint) Table {
	if len(points) == 0 {
		panic("rating: empty breakpoint table")
	}
	for i := 1; i < len(points); i++ {
		if points[i].At <= points[i-1].At {
			panic(fmt.Sprintf("rating: breakpoint table not ascending at index %d (%v <= %v)",
				i, points[i].At, points[i-1].At))
		}
	}
	cp := make([]Breakpoint, len(points))
	copy(cp, points)
	return Table{policy: policy, points: cp}
}

// Lookup resolves a key against the table under its policy.
func (t Table) Lookup(x float64) float64 {
	pts := t.points
	switch t.policy {
	case PolicyStepCeil:
		for _, p := range pts {
			if x <= p.At {
				return p.Value
			}
		}
		return pts[len(pts)-1].Value

	case PolicyStepFloor:
		out := pts[0].Value
		for _, p := range pts {
			if x >= p.At {
				out = p.Value
			} else {
				break
			}
		}
		return out

	default: // PolicyInterpolate
		if x <= pts[0].At {
			return pts[0].Value
		}
		last := pts[len(pts)-1]
		if x >= last.At {
			return last.Value
		}
		for i := 1; i < len(pts); i++ {
			if x <= pts[i].At {
				lo, hi := pts[i-1], pts[i]
				frac := (x - lo.At) / (hi.At - lo.At)
				return lo.Value + frac*(hi.Value-lo.Value)
			}
		}
		return last.Value
	}
}

// Min and Max return the table's threshold endpoints.
func (t Table) Min() float64 { return t.points[0].At }
func (t Table) Max() float64 { return t.points[len(t.points)-1].At }
