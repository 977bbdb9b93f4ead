package analysis

import (
	"math"

	montanastats "github.com/montanaflynn/stats"

	"trialstat/domain/stats"
)

// Descriptive computes the summary record for one sample. An empty sample
// returns the all-zero record; a single observation returns its value with
// zero spread. Neither is an error.
func (e *Engine) Descriptive(values []float64) stats.DescriptiveStats {
	n := len(values)
	if n == 0 {
		return stats.DescriptiveStats{}
	}

	m, _ := montanastats.Mean(values)
	minVal, _ := montanastats.Min(values)
	maxVal, _ := montanastats.Max(values)
	median, _ := montanastats.Median(values)
	q1, _ := montanastats.Percentile(values, 25)
	q3, _ := montanastats.Percentile(values, 75)
	// Percentile returns NaN for samples too small to interpolate
	if math.IsNaN(q1) {
		q1 = median
	}
	if math.IsNaN(q3) {
		q3 = median
	}

	// Bessel-corrected sample variance; undefined below two observations.
	variance := 0.0
	if n >= 2 {
		variance, _ = montanastats.SampleVariance(values)
	}
	stdDev := math.Sqrt(variance)
	stdError := stdDev / math.Sqrt(float64(n))

	cv := 0.0
	if m != 0 {
		cv = (stdDev / m) * 100.0
	}

	return stats.DescriptiveStats{
		N:        n,
		Mean:     m,
		StdDev:   stdDev,
		StdError: stdError,
		Min:      minVal,
		Max:      maxVal,
		Median:   median,
		Q1:       q1,
		Q3:       q3,
		Variance: variance,
		CV:       cv,
	}
}
