package analysis

import (
	"trialstat/domain/stats"
	"trialstat/domain/trial"
)

// TreatmentSummaries rolls a parameter's treatment groups up into one
// descriptive row per group, with each row's delta against the trial control.
// When the set has no control group the delta fields stay zero. Rows follow
// group order.
func (e *Engine) TreatmentSummaries(gs trial.GroupSet) []stats.TreatmentSummary {
	controlIdx := gs.ControlIndex()
	controlMean := 0.0
	if controlIdx >= 0 {
		controlMean = mean(gs.Groups[controlIdx].Values)
	}

	summaries := make([]stats.TreatmentSummary, 0, len(gs.Groups))
	for _, g := range gs.Groups {
		d := e.Descriptive(g.Values)

		diff := 0.0
		pctDiff := 0.0
		if controlIdx >= 0 && !g.IsControl {
			diff = d.Mean - controlMean
			if controlMean != 0 {
				pctDiff = (diff / controlMean) * 100.0
			}
		}

		summaries = append(summaries, stats.TreatmentSummary{
			Parameter:        gs.Parameter.String(),
			BlockCode:        g.Code,
			IsControl:        g.IsControl,
			N:                d.N,
			Mean:             d.Mean,
			StdDev:           d.StdDev,
			Min:              d.Min,
			Max:              d.Max,
			DiffVsControl:    diff,
			PctDiffVsControl: pctDiff,
		})
	}

	return summaries
}
