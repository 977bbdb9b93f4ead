package stats

import (
	"trialstat/domain/trial"
)

// ============================================================================
// CANONICAL RESULT RECORDS
// ============================================================================
//
// Every record here is a plain immutable value object produced by a single
// engine call. None carries a lifecycle beyond that call; callers own the
// snapshot they receive.

// DescriptiveStats summarizes one sample.
// INVARIANTS:
// - N == 0 yields the zero value for every field (contract, not an error)
// - Variance is the Bessel-corrected sample variance (n-1); zero when N < 2
// - CV is StdDev/Mean*100, zero when Mean == 0
type DescriptiveStats struct {
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	StdError float64 `json:"std_error"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	Variance float64 `json:"variance"`
	CV       float64 `json:"cv"` // coefficient of variation, percent
}

// AnovaSource is one row of an ANOVA table. F and P are present only for
// testable sources (between-group, main effects, interaction).
type AnovaSource struct {
	SS float64  `json:"ss"`
	DF int      `json:"df"`
	MS float64  `json:"ms"`
	F  *float64 `json:"f,omitempty"`
	P  *float64 `json:"p,omitempty"`
}

// AnovaResult is the full one-way ANOVA table plus derived context.
// INVARIANT: Between.SS + Within.SS == Total.SS exactly (the total row is
// formed from the sum, never computed independently).
type AnovaResult struct {
	Between         AnovaSource `json:"between"`
	Within          AnovaSource `json:"within"`
	Total           AnovaSource `json:"total"`
	RSquared        float64     `json:"r_squared"`
	IsSignificant05 bool        `json:"is_significant_05"`
	IsSignificant01 bool        `json:"is_significant_01"`
	GroupMeans      []float64   `json:"group_means"`
	GroupSizes      []int       `json:"group_sizes"`
	GrandMean       float64     `json:"grand_mean"`
}

// CellMean pairs a factorial cell with its mean.
type CellMean struct {
	Cell trial.CellKey `json:"cell"`
	Mean float64       `json:"mean"`
}

// TwoWayAnovaResult is the five-row factorial ANOVA table with marginal and
// cell means. Error.SS is a residual by subtraction and may be slightly
// negative under float error; that is tolerated, not rejected.
type TwoWayAnovaResult struct {
	FactorA      AnovaSource `json:"factor_a"`
	FactorB      AnovaSource `json:"factor_b"`
	Interaction  AnovaSource `json:"interaction"`
	Error        AnovaSource `json:"error"`
	Total        AnovaSource `json:"total"`
	FactorAMeans []float64   `json:"factor_a_means"`
	FactorBMeans []float64   `json:"factor_b_means"`
	CellMeans    []CellMean  `json:"cell_means"`
}

// TTestResult is the outcome of a paired or Welch two-sample comparison.
// DF is fractional for the Welch branch (Welch-Satterthwaite).
type TTestResult struct {
	TStatistic     float64 `json:"t_statistic"`
	PValue         float64 `json:"p_value"`
	DF             float64 `json:"df"`
	MeanDifference float64 `json:"mean_difference"`
	CILower        float64 `json:"ci_lower"`
	CIUpper        float64 `json:"ci_upper"`
	IsSignificant  bool    `json:"is_significant"` // fixed at alpha = 0.05
}

// LSDComparison is one pairwise contrast from the LSD post-hoc test.
// IsSignificant is the threshold criterion |MeanDifference| > LSD; the
// p-value is computed separately from the same t-statistic and the two are
// deliberately not unified (they can disagree by rounding at the boundary).
type LSDComparison struct {
	GroupI         int     `json:"group_i"`
	GroupJ         int     `json:"group_j"`
	MeanDifference float64 `json:"mean_difference"`
	StdError       float64 `json:"std_error"`
	TStatistic     float64 `json:"t_statistic"`
	PValue         float64 `json:"p_value"`
	LSD            float64 `json:"lsd"`
	IsSignificant  bool    `json:"is_significant"`
}

// TreatmentSummary is a descriptive rollup for one treatment group of one
// measured parameter, with its delta against the trial control.
type TreatmentSummary struct {
	Parameter        string  `json:"parameter"`
	BlockCode        string  `json:"block_code"`
	IsControl        bool    `json:"is_control"`
	N                int     `json:"n"`
	Mean             float64 `json:"mean"`
	StdDev           float64 `json:"std_dev"`
	Min              float64 `json:"min"`
	Max              float64 `json:"max"`
	DiffVsControl    float64 `json:"diff_vs_control"`
	PctDiffVsControl float64 `json:"pct_diff_vs_control"`
}
