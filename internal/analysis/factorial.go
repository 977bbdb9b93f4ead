package analysis

import (
	"sort"

	"trialstat/domain/stats"
	"trialstat/domain/trial"
)

// TwoWayANOVA runs a factorial analysis over two crossed factors using the
// cell-means method. Cell keys must satisfy A < aLevels and B < bLevels;
// absent cells count as empty samples.
//
// The decomposition assumes a balanced design: the replication count is read
// from the first cell in key order and the per-level counts are averaged
// across levels. Unbalanced cell sizes are not corrected for and will bias
// the sums of squares; known limitation, no validation is performed.
func (e *Engine) TwoWayANOVA(data trial.FactorialData, aLevels, bLevels int) stats.TwoWayAnovaResult {
	// Fixed accumulation order keeps float summation, and therefore the whole
	// result, bit-identical across calls on the same input.
	keys := make([]trial.CellKey, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	grandSum := 0.0
	nTotal := 0
	factorASums := make([]float64, aLevels)
	factorBSums := make([]float64, bLevels)
	factorAN := make([]int, aLevels)
	factorBN := make([]int, bLevels)
	cellMeans := make(map[trial.CellKey]float64, len(data))

	for _, key := range keys {
		values := data[key]
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		n := len(values)
		m := 0.0
		if n > 0 {
			m = sum / float64(n)
		}

		cellMeans[key] = m
		grandSum += sum
		nTotal += n
		factorASums[key.A] += sum
		factorBSums[key.B] += sum
		factorAN[key.A] += n
		factorBN[key.B] += n
	}

	grandMean := 0.0
	if nTotal > 0 {
		grandMean = grandSum / float64(nTotal)
	}

	factorAMeans := marginalMeans(factorASums, factorAN)
	factorBMeans := marginalMeans(factorBSums, factorBN)

	// Main-effect SS under the balance assumption: per-level n is the
	// average count, not the actual one.
	nPerA := sumInts(factorAN) / aLevels
	ssA := 0.0
	for _, m := range factorAMeans {
		diff := m - grandMean
		ssA += float64(nPerA) * diff * diff
	}

	nPerB := sumInts(factorBN) / bLevels
	ssB := 0.0
	for _, m := range factorBMeans {
		diff := m - grandMean
		ssB += float64(nPerB) * diff * diff
	}

	ssTotal := 0.0
	for _, key := range keys {
		for _, v := range data[key] {
			diff := v - grandMean
			ssTotal += diff * diff
		}
	}

	// Replications per cell, read from the first cell in key order.
	r := 1
	if len(keys) > 0 {
		r = len(data[keys[0]])
	}

	ssAB := 0.0
	for a := 0; a < aLevels; a++ {
		for b := 0; b < bLevels; b++ {
			cellMean, ok := cellMeans[trial.CellKey{A: a, B: b}]
			if !ok {
				continue
			}
			expected := factorAMeans[a] + factorBMeans[b] - grandMean
			diff := cellMean - expected
			ssAB += float64(r) * diff * diff
		}
	}

	// Residual by subtraction; may go slightly negative under float error or
	// model misspecification, which is tolerated.
	ssError := ssTotal - ssA - ssB - ssAB

	dfA := float64(aLevels - 1)
	dfB := float64(bLevels - 1)
	dfAB := dfA * dfB
	dfError := float64(nTotal - aLevels*bLevels)
	dfTotal := float64(nTotal - 1)

	msA := meanSquare(ssA, dfA)
	msB := meanSquare(ssB, dfB)
	msAB := meanSquare(ssAB, dfAB)
	msError := meanSquare(ssError, dfError)

	fA := fRatio(msA, msError)
	fB := fRatio(msB, msError)
	fAB := fRatio(msAB, msError)

	pA := e.dist.FTestPValue(fA, dfA, dfError)
	pB := e.dist.FTestPValue(fB, dfB, dfError)
	pAB := e.dist.FTestPValue(fAB, dfAB, dfError)

	orderedCellMeans := make([]stats.CellMean, 0, len(keys))
	for _, key := range keys {
		orderedCellMeans = append(orderedCellMeans, stats.CellMean{Cell: key, Mean: cellMeans[key]})
	}

	return stats.TwoWayAnovaResult{
		FactorA: stats.AnovaSource{
			SS: ssA,
			DF: int(dfA),
			MS: msA,
			F:  &fA,
			P:  &pA,
		},
		FactorB: stats.AnovaSource{
			SS: ssB,
			DF: int(dfB),
			MS: msB,
			F:  &fB,
			P:  &pB,
		},
		Interaction: stats.AnovaSource{
			SS: ssAB,
			DF: int(dfAB),
			MS: msAB,
			F:  &fAB,
			P:  &pAB,
		},
		Error: stats.AnovaSource{
			SS: ssError,
			DF: int(dfError),
			MS: msError,
		},
		Total: stats.AnovaSource{
			SS: ssTotal,
			DF: int(dfTotal),
		},
		FactorAMeans: factorAMeans,
		FactorBMeans: factorBMeans,
		CellMeans:    orderedCellMeans,
	}
}

func marginalMeans(sums []float64, counts []int) []float64 {
	means := make([]float64, len(sums))
	for i, sum := range sums {
		if counts[i] > 0 {
			means[i] = sum / float64(counts[i])
		}
	}
	return means
}

func meanSquare(ss, df float64) float64 {
	if df > 0 {
		return ss / df
	}
	return 0
}

func fRatio(ms, msError float64) float64 {
	if msError > 0 {
		return ms / msError
	}
	return 0
}

func sumInts(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
