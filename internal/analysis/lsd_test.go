package analysis

import (
	"math"
	"testing"
)

func TestLSDTest_PairEnumeration(t *testing.T) {
	e := NewEngine()
	groups := [][]float64{
		{1, 2, 3},
		{2, 3, 4},
		{3, 4, 5},
		{4, 5, 6},
	}
	anova := e.OneWayANOVA(groups)

	comps := e.LSDTest(groups, anova.Within.MS, float64(anova.Within.DF))

	if len(comps) != 6 {
		t.Fatalf("expected k(k-1)/2 = 6 comparisons, got %d", len(comps))
	}
	wantPairs := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for i, c := range comps {
		if c.GroupI != wantPairs[i][0] || c.GroupJ != wantPairs[i][1] {
			t.Fatalf("comparison %d: expected pair %v, got (%d,%d)", i, wantPairs[i], c.GroupI, c.GroupJ)
		}
		if c.GroupI >= c.GroupJ {
			t.Fatalf("comparison %d: i >= j", i)
		}
	}
}

func TestLSDTest_AgainstAnovaErrorTerm(t *testing.T) {
	e := NewEngine()
	groups := [][]float64{
		{10.0, 10.2, 9.8, 10.1},
		{10.1, 9.9, 10.0, 10.2},
		{14.8, 15.1, 15.0, 14.9},
	}
	anova := e.OneWayANOVA(groups)

	comps := e.LSDTest(groups, anova.Within.MS, float64(anova.Within.DF))

	// Groups 0 and 1 overlap; group 2 is far away from both.
	if comps[0].IsSignificant {
		t.Fatalf("overlapping groups 0/1 flagged significant: %+v", comps[0])
	}
	if !comps[1].IsSignificant || !comps[2].IsSignificant {
		t.Fatalf("separated group 2 not flagged: %+v / %+v", comps[1], comps[2])
	}
	if comps[1].PValue >= 0.05 {
		t.Fatalf("expected p < 0.05 for separated pair, got %v", comps[1].PValue)
	}

	// se = sqrt(mse * (1/n_i + 1/n_j)) with the pooled error term
	wantSE := math.Sqrt(anova.Within.MS * (1.0/4 + 1.0/4))
	if math.Abs(comps[0].StdError-wantSE) > 1e-12 {
		t.Fatalf("expected se=%v, got %v", wantSE, comps[0].StdError)
	}
	// lsd = t_crit * se and t = diff / se
	tCrit := NewDistributions().TCritical975(float64(anova.Within.DF))
	if math.Abs(comps[0].LSD-tCrit*wantSE) > 1e-12 {
		t.Fatalf("lsd mismatch: %v vs %v", comps[0].LSD, tCrit*wantSE)
	}
	if math.Abs(comps[0].TStatistic-comps[0].MeanDifference/wantSE) > 1e-12 {
		t.Fatalf("t mismatch: %v", comps[0].TStatistic)
	}
}

func TestLSDTest_InvalidErrorDFDegrades(t *testing.T) {
	e := NewEngine()
	groups := [][]float64{{1, 2}, {3, 4}}

	comps := e.LSDTest(groups, 1.0, 0)

	if comps[0].PValue != 1.0 {
		t.Fatalf("expected fallback p=1.0 for df_error=0, got %v", comps[0].PValue)
	}
	// Critical value falls back to the normal asymptote
	wantLSD := 1.96 * comps[0].StdError
	if math.Abs(comps[0].LSD-wantLSD) > 1e-12 {
		t.Fatalf("expected lsd=%v, got %v", wantLSD, comps[0].LSD)
	}
}

func TestLSDTest_ZeroMSEZeroStdError(t *testing.T) {
	e := NewEngine()
	groups := [][]float64{{1, 1}, {2, 2}}

	comps := e.LSDTest(groups, 0, 2)

	if comps[0].StdError != 0 || comps[0].TStatistic != 0 {
		t.Fatalf("expected se=0 and t=0 for mse=0, got %+v", comps[0])
	}
	// With lsd=0, any nonzero mean difference clears the threshold
	if !comps[0].IsSignificant {
		t.Fatalf("expected threshold significance at lsd=0 with nonzero diff")
	}
}

func TestLSDTest_NoGroups(t *testing.T) {
	e := NewEngine()
	if comps := e.LSDTest(nil, 1.0, 5); len(comps) != 0 {
		t.Fatalf("expected no comparisons, got %d", len(comps))
	}
}
