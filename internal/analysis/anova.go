package analysis

import (
	"trialstat/domain/stats"
)

// OneWayANOVA partitions variance across k independent groups into
// between-group and within-group components. Group order determines the
// numbering of means and sizes in the result, nothing else.
func (e *Engine) OneWayANOVA(groups [][]float64) stats.AnovaResult {
	k := len(groups)
	nTotal := 0
	grandSum := 0.0
	groupMeans := make([]float64, 0, k)
	groupSizes := make([]int, 0, k)

	for _, group := range groups {
		n := len(group)
		sum := 0.0
		for _, v := range group {
			sum += v
		}
		m := 0.0
		if n > 0 {
			m = sum / float64(n)
		}
		groupMeans = append(groupMeans, m)
		groupSizes = append(groupSizes, n)
		grandSum += sum
		nTotal += n
	}

	grandMean := 0.0
	if nTotal > 0 {
		grandMean = grandSum / float64(nTotal)
	}

	ssb := 0.0
	for i, group := range groups {
		n := float64(len(group))
		diff := groupMeans[i] - grandMean
		ssb += n * diff * diff
	}

	ssw := 0.0
	for i, group := range groups {
		for _, v := range group {
			diff := v - groupMeans[i]
			ssw += diff * diff
		}
	}

	// Total SS is the algebraic sum, never measured independently.
	sst := ssb + ssw

	dfBetween := float64(k - 1)
	dfWithin := float64(nTotal - k)
	dfTotal := float64(nTotal - 1)

	msb := 0.0
	if dfBetween > 0 {
		msb = ssb / dfBetween
	}
	msw := 0.0
	if dfWithin > 0 {
		msw = ssw / dfWithin
	}

	fStatistic := 0.0
	if msw > 0 {
		fStatistic = msb / msw
	}

	pValue := e.dist.FTestPValue(fStatistic, dfBetween, dfWithin)

	rSquared := 0.0
	if sst > 0 {
		rSquared = ssb / sst
	}

	return stats.AnovaResult{
		Between: stats.AnovaSource{
			SS: ssb,
			DF: int(dfBetween),
			MS: msb,
			F:  &fStatistic,
			P:  &pValue,
		},
		Within: stats.AnovaSource{
			SS: ssw,
			DF: int(dfWithin),
			MS: msw,
		},
		Total: stats.AnovaSource{
			SS: sst,
			DF: int(dfTotal),
		},
		RSquared:        rSquared,
		IsSignificant05: pValue < 0.05,
		IsSignificant01: pValue < 0.01,
		GroupMeans:      groupMeans,
		GroupSizes:      groupSizes,
		GrandMean:       grandMean,
	}
}
