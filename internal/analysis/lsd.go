package analysis

import (
	"math"

	"trialstat/domain/stats"
)

// LSDTest runs least-significant-difference pairwise comparisons over the
// same groups a one-way ANOVA consumed, using that ANOVA's within-group mean
// square (mse) and error degrees of freedom. It is a post-hoc step: calling
// it without a prior ANOVA's error term is a caller mistake the engine cannot
// detect.
//
// Comparisons cover every unordered pair (i, j) with i < j, in lexicographic
// order, k*(k-1)/2 entries for k groups. Significance is the threshold
// criterion |diff| > lsd; the pairwise p-value is computed on its own and may
// disagree with the flag by rounding at the alpha boundary.
func (e *Engine) LSDTest(groups [][]float64, mse, dfError float64) []stats.LSDComparison {
	k := len(groups)
	comparisons := make([]stats.LSDComparison, 0, k*(k-1)/2)

	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			n1 := float64(len(groups[i]))
			n2 := float64(len(groups[j]))
			meanDiff := mean(groups[i]) - mean(groups[j])

			se := math.Sqrt(mse * (1/n1 + 1/n2))
			t := 0.0
			if se > 0 {
				t = meanDiff / se
			}

			pValue := e.dist.TTestPValue(t, dfError)
			lsd := e.dist.TCritical975(dfError) * se

			comparisons = append(comparisons, stats.LSDComparison{
				GroupI:         i,
				GroupJ:         j,
				MeanDifference: meanDiff,
				StdError:       se,
				TStatistic:     t,
				PValue:         pValue,
				LSD:            lsd,
				IsSignificant:  math.Abs(meanDiff) > lsd,
			})
		}
	}

	return comparisons
}
