package trial

import (
	"trialstat/domain/core"
)

// ExperimentDesign identifies the layout of a field trial
type ExperimentDesign string

const (
	DesignCRD       ExperimentDesign = "crd"       // completely randomized
	DesignRCBD      ExperimentDesign = "rcbd"      // randomized complete block
	DesignFactorial ExperimentDesign = "factorial" // two crossed factors
)

// Group is one level of a treatment factor: a label plus its observations.
// Observations are finite float64 values; callers pre-filter NaN/Inf.
type Group struct {
	Code      string    `json:"code"`
	IsControl bool      `json:"is_control"`
	Values    []float64 `json:"values"`
}

// GroupSet is an ordered collection of groups for one measured parameter.
// Order determines group numbering in ANOVA and LSD output but not the
// statistical outcome.
type GroupSet struct {
	Parameter core.ParameterKey `json:"parameter"`
	Name      string            `json:"name,omitempty"`
	Groups    []Group           `json:"groups"`
}

// Samples returns the raw observation slices in group order.
func (gs GroupSet) Samples() [][]float64 {
	out := make([][]float64, len(gs.Groups))
	for i, g := range gs.Groups {
		out[i] = g.Values
	}
	return out
}

// ControlIndex returns the index of the first control group, or -1.
func (gs GroupSet) ControlIndex() int {
	for i, g := range gs.Groups {
		if g.IsControl {
			return i
		}
	}
	return -1
}

// TotalN returns the total observation count across groups.
func (gs GroupSet) TotalN() int {
	n := 0
	for _, g := range gs.Groups {
		n += len(g.Values)
	}
	return n
}

// CellKey addresses one cell of a two-factor layout by zero-based level
// indices. Callers guarantee A < aLevels and B < bLevels.
type CellKey struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Less orders cell keys lexicographically by (A, B).
func (k CellKey) Less(other CellKey) bool {
	if k.A != other.A {
		return k.A < other.A
	}
	return k.B < other.B
}

// FactorialData is a sparse mapping from cell coordinates to observations.
// Absent cells are treated as empty samples.
type FactorialData map[CellKey][]float64
