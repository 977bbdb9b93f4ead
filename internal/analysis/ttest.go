package analysis

import (
	"math"

	"trialstat/domain/stats"
)

// TTest compares two samples. With paired=true it tests the per-index
// differences (samples must be the same length); otherwise it runs Welch's
// unequal-variance test. Calling the paired branch with mismatched lengths
// returns the neutral non-significant result rather than failing.
func (e *Engine) TTest(group1, group2 []float64, paired bool) stats.TTestResult {
	if paired && len(group1) != len(group2) {
		return stats.TTestResult{PValue: 1.0}
	}

	var tStat, df, meanDiff float64
	if paired {
		tStat, df, meanDiff = pairedT(group1, group2)
	} else {
		tStat, df, meanDiff = welchT(group1, group2)
	}

	pValue := e.dist.TTestPValue(tStat, df)
	tCrit := e.dist.TCritical975(df)

	// The standard error is back-derived from the statistic instead of
	// recomputed; when t is zero the CI collapses to the point estimate.
	se := 0.0
	if tStat != 0 {
		se = meanDiff / tStat
	}

	return stats.TTestResult{
		TStatistic:     tStat,
		PValue:         pValue,
		DF:             df,
		MeanDifference: meanDiff,
		CILower:        meanDiff - tCrit*se,
		CIUpper:        meanDiff + tCrit*se,
		IsSignificant:  pValue < 0.05,
	}
}

func pairedT(group1, group2 []float64) (tStat, df, meanDiff float64) {
	diffs := make([]float64, len(group1))
	for i := range group1 {
		diffs[i] = group1[i] - group2[i]
	}

	n := float64(len(diffs))
	meanD := mean(diffs)
	varD := sampleVariance(diffs)
	seD := math.Sqrt(varD / n)

	t := 0.0
	if seD > 0 {
		t = meanD / seD
	}
	return t, n - 1, meanD
}

func welchT(group1, group2 []float64) (tStat, df, meanDiff float64) {
	n1 := float64(len(group1))
	n2 := float64(len(group2))
	mean1 := mean(group1)
	mean2 := mean(group2)
	var1 := sampleVariance(group1)
	var2 := sampleVariance(group2)

	se := math.Sqrt(var1/n1 + var2/n2)
	t := 0.0
	if se > 0 {
		t = (mean1 - mean2) / se
	}

	// Welch-Satterthwaite equation, pooled fallback when degenerate
	num := math.Pow(var1/n1+var2/n2, 2)
	denom := math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1)
	d := n1 + n2 - 2
	if denom > 0 {
		d = num / denom
	}

	return t, d, mean1 - mean2
}
