package excel

import (
	"trialstat/domain/core"
	"trialstat/domain/trial"
)

// TrialData is the materialized content of a trial workbook: one GroupSet per
// measured parameter, in first-appearance order.
type TrialData struct {
	Parameters []core.ParameterKey
	Sets       map[core.ParameterKey]trial.GroupSet
	RowCount   int
	Skipped    int // rows dropped for non-numeric or missing values
}

// GroupSets returns the sets in parameter order.
func (d *TrialData) GroupSets() []trial.GroupSet {
	out := make([]trial.GroupSet, 0, len(d.Parameters))
	for _, key := range d.Parameters {
		out = append(out, d.Sets[key])
	}
	return out
}

// Expected column layout of a trial sheet. Header names are matched
// case-insensitively; extra columns are ignored.
const (
	colParameter = "parameter"
	colBlock     = "block"
	colControl   = "is_control"
	colValue     = "value"
)
