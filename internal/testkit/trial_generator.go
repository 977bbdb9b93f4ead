package testkit

import (
	"fmt"
	"math/rand"

	"trialstat/domain/core"
	"trialstat/domain/trial"
)

// TrialConfig describes a synthetic randomized trial: one control plus
// len(TreatmentEffects) treatment groups, each with Replicates observations
// drawn around BaseMean plus the treatment's additive effect.
type TrialConfig struct {
	Parameter        string
	BaseMean         float64
	Noise            float64 // std dev of the observation noise
	Replicates       int
	TreatmentEffects []float64
	Seed             int64
}

// DefaultTrialConfig mirrors a typical small biostimulant trial: control plus
// three doses, four replicates.
func DefaultTrialConfig() TrialConfig {
	return TrialConfig{
		Parameter:        "plant_height_cm",
		BaseMean:         42.0,
		Noise:            1.5,
		Replicates:       4,
		TreatmentEffects: []float64{2.0, 4.5, 3.0},
		Seed:             42,
	}
}

// GenerateTrial produces a deterministic GroupSet for the given config.
// The same config always yields the same observations.
func GenerateTrial(cfg TrialConfig) (trial.GroupSet, error) {
	if cfg.Replicates <= 0 {
		return trial.GroupSet{}, fmt.Errorf("replicates must be > 0")
	}
	if cfg.Noise < 0 {
		return trial.GroupSet{}, fmt.Errorf("noise must be >= 0")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	groups := make([]trial.Group, 0, len(cfg.TreatmentEffects)+1)
	groups = append(groups, trial.Group{
		Code:      "P0",
		IsControl: true,
		Values:    drawSample(rng, cfg.BaseMean, cfg.Noise, cfg.Replicates),
	})
	for i, effect := range cfg.TreatmentEffects {
		groups = append(groups, trial.Group{
			Code:   fmt.Sprintf("P%d", i+1),
			Values: drawSample(rng, cfg.BaseMean+effect, cfg.Noise, cfg.Replicates),
		})
	}

	return trial.GroupSet{
		Parameter: core.ParameterKey(cfg.Parameter),
		Name:      cfg.Parameter,
		Groups:    groups,
	}, nil
}

// GenerateFactorial produces a balanced aLevels x bLevels dataset where the
// two factors act additively (effect size per level step) plus an optional
// interaction bump on the highest-level cell. With interaction 0 the cell
// means are exactly additive in expectation.
func GenerateFactorial(aLevels, bLevels, replicates int, interaction float64, seed int64) (trial.FactorialData, error) {
	if aLevels < 1 || bLevels < 1 {
		return nil, fmt.Errorf("factor levels must be >= 1")
	}
	if replicates <= 0 {
		return nil, fmt.Errorf("replicates must be > 0")
	}

	rng := rand.New(rand.NewSource(seed))

	data := make(trial.FactorialData, aLevels*bLevels)
	for a := 0; a < aLevels; a++ {
		for b := 0; b < bLevels; b++ {
			mean := 20.0 + 3.0*float64(a) + 1.5*float64(b)
			if a == aLevels-1 && b == bLevels-1 {
				mean += interaction
			}
			data[trial.CellKey{A: a, B: b}] = drawSample(rng, mean, 0.8, replicates)
		}
	}
	return data, nil
}

func drawSample(rng *rand.Rand, mean, noise float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + rng.NormFloat64()*noise
	}
	return values
}
