package rl

import "math"

// ProbEps is the default clamp margin keeping unit probabilities away from
// exactly 0 and 1 after a numeric fault.
const ProbEps = 1e-12

// Logistic returns 1/(1+exp(-x)).  It is stable for large-magnitude x: the
// exponential is only ever taken of a non-positive argument, so the result
// saturates to 0 or 1 without overflowing.
func Logistic(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// ClampProb forces p into [eps, 1-eps].  NaN maps to 0.5 since a NaN weight
// carries no directional information.  This is the recovery path for
// pathological weight magnitudes; callers treat it as a recovered condition,
// not a failure.
func ClampProb(p, eps float64) float64 {
	if math.IsNaN(p) {
		return 0.5
	}
	if p < eps {
		return eps
	}
	if p > 1-eps {
		return 1 - eps
	}
	return p
}
