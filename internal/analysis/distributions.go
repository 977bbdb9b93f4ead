package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Fallbacks for statistically undefined inputs. A malformed degrees-of-freedom
// parameter is never fatal at this layer: p-values degrade to 1.0 (no evidence
// of significance) and the t critical value degrades to the standard-normal
// asymptote.
const (
	fallbackPValue    = 1.0
	fallbackTCritical = 1.96
)

// Distributions provides unified access to the continuous distributions the
// engine needs. All CDF and quantile lookups go through here.
type Distributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *Distributions {
	return &Distributions{}
}

// TTestPValue computes the two-tailed p-value for a t-statistic using
// Student's t-distribution. Degrees of freedom may be fractional
// (Welch-Satterthwaite). Non-positive or NaN df yields 1.0.
func (d *Distributions) TTestPValue(tStatistic, df float64) float64 {
	if df <= 0 || math.IsNaN(df) {
		return fallbackPValue
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - tDist.CDF(math.Abs(tStatistic)))
}

// FTestPValue computes the upper-tail p-value for an F-statistic
// (ANOVA sources). Invalid df on either side yields 1.0.
func (d *Distributions) FTestPValue(fStatistic, df1, df2 float64) float64 {
	if df1 <= 0 || df2 <= 0 || math.IsNaN(df1) || math.IsNaN(df2) {
		return fallbackPValue
	}

	fDist := distuv.F{D1: df1, D2: df2}
	return 1 - fDist.CDF(fStatistic)
}

// TCritical975 computes the 0.975 quantile of Student's t-distribution, the
// two-tailed 95% critical value. Invalid df yields 1.96.
func (d *Distributions) TCritical975(df float64) float64 {
	if df <= 0 || math.IsNaN(df) {
		return fallbackTCritical
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.Quantile(0.975)
}
