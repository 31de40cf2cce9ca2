package rl

import (
	"math"
	"testing"
)

func TestLogisticMidpoint(t *testing.T) {
	if v := Logistic(0); v != 0.5 {
		t.Errorf("Logistic(0) = %v, want 0.5", v)
	}
}

func TestLogisticMonotoneBounded(t *testing.T) {
	xs := []float64{-750, -50, -5, -1, 0, 1, 5, 50, 750}
	prev := math.Inf(-1)
	for _, x := range xs {
		v := Logistic(x)
		if math.IsNaN(v) || v < 0 || v > 1 {
			t.Fatalf("Logistic(%v) = %v, want within [0,1]", x, v)
		}
		if v < prev {
			t.Errorf("Logistic(%v) = %v < Logistic at previous input %v, want monotone increasing", x, v, prev)
		}
		prev = v
	}
}

func TestLogisticSaturates(t *testing.T) {
	// Extreme weights are allowed to saturate to exactly 0 or 1.  They must
	// not produce NaN or Inf.
	if v := Logistic(1e308); v != 1 {
		t.Errorf("Logistic(1e308) = %v, want 1", v)
	}
	if v := Logistic(-1e308); v != 0 {
		t.Errorf("Logistic(-1e308) = %v, want 0", v)
	}
}

func TestClampProb(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, ProbEps},
		{1, 1 - ProbEps},
		{0.25, 0.25},
		{math.NaN(), 0.5},
		{math.Inf(1), 1 - ProbEps},
		{math.Inf(-1), ProbEps},
	}
	for _, c := range cases {
		if got := ClampProb(c.in, ProbEps); got != c.want {
			t.Errorf("ClampProb(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
