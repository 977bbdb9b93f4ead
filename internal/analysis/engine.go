package analysis

// Engine performs inferential statistics over materialized trial samples:
// descriptive summaries, one- and two-way ANOVA, t-tests, and LSD post-hoc
// comparisons. Every method is a pure function over its inputs; the engine
// holds no mutable state and is safe for concurrent use.
//
// Error policy: statistically undefined conditions (empty samples, zero
// variance, non-positive degrees of freedom, mismatched paired lengths)
// degrade to conservative defaults instead of returning errors. Nothing in
// this package is fatal.
type Engine struct {
	dist *Distributions
}

// NewEngine creates a statistical engine
func NewEngine() *Engine {
	return &Engine{dist: NewDistributions()}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sampleVariance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - m
		sumSq += diff * diff
	}
	return sumSq / float64(len(values)-1)
}
