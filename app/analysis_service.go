package app

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"trialstat/domain/core"
	"trialstat/domain/stats"
	"trialstat/domain/trial"
	"trialstat/internal"
	"trialstat/internal/analysis"
)

// AnalysisService runs the full inferential sweep over a trial: per measured
// parameter, descriptive summaries, one-way ANOVA, and (when ANOVA has an
// error term to offer) LSD post-hoc comparisons.
type AnalysisService struct {
	engine     *analysis.Engine
	maxWorkers int
	runLSD     bool
	log        *internal.Logger
}

// SweepRequest defines the inputs for an analysis sweep
type SweepRequest struct {
	Sets    []trial.GroupSet
	SweepID core.SweepID // optional, generated if empty
}

// ParameterResult bundles all analyses for one measured parameter
type ParameterResult struct {
	Parameter   core.ParameterKey        `json:"parameter"`
	Summaries   []stats.TreatmentSummary `json:"summaries"`
	Anova       stats.AnovaResult        `json:"anova"`
	Comparisons []stats.LSDComparison    `json:"comparisons,omitempty"`
}

// SweepResult contains the complete output of an analysis sweep
type SweepResult struct {
	SweepID   core.SweepID      `json:"sweep_id"`
	Results   []ParameterResult `json:"results"`
	Artifacts []core.Artifact   `json:"artifacts"`
	RuntimeMs int64             `json:"runtime_ms"`
}

// NewAnalysisService creates an analysis sweep service
func NewAnalysisService(maxWorkers int, runLSD bool) *AnalysisService {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &AnalysisService{
		engine:     analysis.NewEngine(),
		maxWorkers: maxWorkers,
		runLSD:     runLSD,
		log:        internal.DefaultLogger,
	}
}

// RunSweep analyzes every parameter in the request concurrently. Parameter
// results come back in request order regardless of completion order; the
// per-parameter computations themselves never fail (engine contract), so the
// only error path is context cancellation.
func (s *AnalysisService) RunSweep(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	start := time.Now()

	sweepID := req.SweepID
	if sweepID == "" {
		sweepID = core.SweepID(core.NewID())
	}
	s.log.Info("analysis sweep %s: %d parameters", sweepID, len(req.Sets))

	results := make([]ParameterResult, len(req.Sets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for i, gs := range req.Sets {
		i, gs := i, gs
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.analyzeParameter(gs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	artifacts := s.stampArtifacts(results)

	return &SweepResult{
		SweepID:   sweepID,
		Results:   results,
		Artifacts: artifacts,
		RuntimeMs: time.Since(start).Milliseconds(),
	}, nil
}

func (s *AnalysisService) analyzeParameter(gs trial.GroupSet) ParameterResult {
	samples := gs.Samples()

	result := ParameterResult{
		Parameter: gs.Parameter,
		Summaries: s.engine.TreatmentSummaries(gs),
		Anova:     s.engine.OneWayANOVA(samples),
	}

	if s.runLSD && result.Anova.Within.DF > 0 {
		result.Comparisons = s.engine.LSDTest(samples, result.Anova.Within.MS, float64(result.Anova.Within.DF))
	}

	return result
}

// stampArtifacts wraps each analysis output in an audit envelope with a
// time-ordered ID.
func (s *AnalysisService) stampArtifacts(results []ParameterResult) []core.Artifact {
	var artifacts []core.Artifact
	now := core.Now()

	for _, r := range results {
		artifacts = append(artifacts, core.Artifact{
			ID:        core.NewID(),
			Kind:      core.ArtifactTreatmentSum,
			Parameter: r.Parameter,
			Payload:   r.Summaries,
			CreatedAt: now,
		})
		artifacts = append(artifacts, core.Artifact{
			ID:        core.NewID(),
			Kind:      core.ArtifactAnova,
			Parameter: r.Parameter,
			Payload:   r.Anova,
			CreatedAt: now,
		})
		if len(r.Comparisons) > 0 {
			artifacts = append(artifacts, core.Artifact{
				ID:        core.NewID(),
				Kind:      core.ArtifactLSD,
				Parameter: r.Parameter,
				Payload:   r.Comparisons,
				CreatedAt: now,
			})
		}
	}

	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i].ID < artifacts[j].ID })
	return artifacts
}
