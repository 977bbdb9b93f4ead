package analysis

import (
	"math"
	"testing"
)

func TestDescriptive_EmptySampleIsAllZero(t *testing.T) {
	e := NewEngine()
	d := e.Descriptive(nil)

	if d.N != 0 {
		t.Fatalf("expected n=0, got %d", d.N)
	}
	for name, v := range map[string]float64{
		"mean": d.Mean, "std_dev": d.StdDev, "std_error": d.StdError,
		"min": d.Min, "max": d.Max, "median": d.Median,
		"q1": d.Q1, "q3": d.Q3, "variance": d.Variance, "cv": d.CV,
	} {
		if v != 0 {
			t.Fatalf("expected %s=0 for empty sample, got %v", name, v)
		}
	}
}

func TestDescriptive_ClassicExample(t *testing.T) {
	e := NewEngine()
	d := e.Descriptive([]float64{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0})

	if d.N != 8 {
		t.Fatalf("expected n=8, got %d", d.N)
	}
	if d.Mean != 5.0 {
		t.Fatalf("expected mean=5.0, got %v", d.Mean)
	}
	// Sample (Bessel-corrected) std dev: sqrt(32/7)
	if math.Abs(d.StdDev-2.13809) > 1e-4 {
		t.Fatalf("expected sample std_dev ~2.138, got %v", d.StdDev)
	}
	if d.Min != 2.0 || d.Max != 9.0 {
		t.Fatalf("expected min=2 max=9, got min=%v max=%v", d.Min, d.Max)
	}
	if d.Median != 4.5 {
		t.Fatalf("expected median=4.5, got %v", d.Median)
	}
	if math.Abs(d.Variance-32.0/7.0) > 1e-12 {
		t.Fatalf("expected variance=32/7, got %v", d.Variance)
	}
	wantSE := d.StdDev / math.Sqrt(8)
	if math.Abs(d.StdError-wantSE) > 1e-12 {
		t.Fatalf("expected std_error=%v, got %v", wantSE, d.StdError)
	}
	wantCV := d.StdDev / 5.0 * 100.0
	if math.Abs(d.CV-wantCV) > 1e-12 {
		t.Fatalf("expected cv=%v, got %v", wantCV, d.CV)
	}
}

func TestDescriptive_SingleObservationHasZeroSpread(t *testing.T) {
	e := NewEngine()
	d := e.Descriptive([]float64{3.5})

	if d.N != 1 || d.Mean != 3.5 || d.Min != 3.5 || d.Max != 3.5 {
		t.Fatalf("unexpected singleton summary: %+v", d)
	}
	if d.Variance != 0 || d.StdDev != 0 || d.StdError != 0 {
		t.Fatalf("expected zero spread for n=1, got var=%v sd=%v se=%v", d.Variance, d.StdDev, d.StdError)
	}
}

func TestDescriptive_ZeroMeanHasZeroCV(t *testing.T) {
	e := NewEngine()
	d := e.Descriptive([]float64{-1.0, 1.0})

	if d.Mean != 0 {
		t.Fatalf("expected mean=0, got %v", d.Mean)
	}
	if d.CV != 0 {
		t.Fatalf("expected cv=0 when mean is zero, got %v", d.CV)
	}
}
