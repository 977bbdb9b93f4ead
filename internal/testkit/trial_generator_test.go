package testkit

import (
	"reflect"
	"testing"

	"trialstat/domain/trial"
)

func TestGenerateTrial_DeterministicForSeed(t *testing.T) {
	cfg := DefaultTrialConfig()

	first, err := GenerateTrial(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := GenerateTrial(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different trials")
	}
}

func TestGenerateTrial_Shape(t *testing.T) {
	cfg := DefaultTrialConfig()
	gs, err := GenerateTrial(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(gs.Groups) != len(cfg.TreatmentEffects)+1 {
		t.Fatalf("expected %d groups, got %d", len(cfg.TreatmentEffects)+1, len(gs.Groups))
	}
	if gs.ControlIndex() != 0 {
		t.Fatalf("expected control at index 0, got %d", gs.ControlIndex())
	}
	for _, g := range gs.Groups {
		if len(g.Values) != cfg.Replicates {
			t.Fatalf("group %s: expected %d replicates, got %d", g.Code, cfg.Replicates, len(g.Values))
		}
	}
	if gs.TotalN() != cfg.Replicates*len(gs.Groups) {
		t.Fatalf("total n mismatch: %d", gs.TotalN())
	}
}

func TestGenerateTrial_RejectsBadConfig(t *testing.T) {
	cfg := DefaultTrialConfig()
	cfg.Replicates = 0
	if _, err := GenerateTrial(cfg); err == nil {
		t.Fatalf("expected error for zero replicates")
	}
}

func TestGenerateFactorial_BalancedShape(t *testing.T) {
	data, err := GenerateFactorial(2, 3, 4, 0, 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(data) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(data))
	}
	for key, values := range data {
		if key.A < 0 || key.A >= 2 || key.B < 0 || key.B >= 3 {
			t.Fatalf("cell key out of range: %+v", key)
		}
		if len(values) != 4 {
			t.Fatalf("cell %+v: expected 4 replicates, got %d", key, len(values))
		}
	}
	if _, ok := data[trial.CellKey{A: 1, B: 2}]; !ok {
		t.Fatalf("expected complete layout")
	}
}
