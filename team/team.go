// Package team implements the REINFORCE algorithm (Williams and Peng, 1991)
// for a team network of stochastic binary units: all units are output units
// with no connections between them, so each unit's Bernoulli parameter
// depends only on its own weight.  One Iterate call performs one sample,
// one reward evaluation, one baseline update, and one weight update:
//
//	p[i]  = logistic(w[i])
//	y[i]  ~ Bernoulli(p[i])
//	r     = obj(y)
//	rbar  = gamma*rbar + (1-gamma)*r
//	e[i]  = y[i] - p[i]
//	w[i] += alpha*r*e[i] - decay*w[i]
//
// The Comparison option swaps the raw reward r in the weight update for the
// baseline-relative advantage r - rbar, the paper's reinforcement-comparison
// variant.
package team

import (
	"database/sql"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	rl "github.com/glarange/RL"
)

const (
	DefaultAlpha = 0.01
	DefaultGamma = 0.9
)

type Option func(*Iterator)

// Alpha sets the learning rate (must be > 0).
func Alpha(a float64) Option {
	return func(it *Iterator) { it.alpha = a }
}

// Gamma sets the baseline decay (must be in [0, 1)).
func Gamma(g float64) Option {
	return func(it *Iterator) { it.gamma = g }
}

// WeightDecay sets the weight-decay coefficient (must be >= 0).
func WeightDecay(d float64) Option {
	return func(it *Iterator) { it.decay = d }
}

// Comparison makes the weight update use the baseline-relative advantage
// r - rbar instead of the raw reward.
func Comparison() Option {
	return func(it *Iterator) { it.comparison = true }
}

// Rng injects the random source used for weight initialization and unit
// sampling.  It is the only source of randomness in an iterator; injecting
// a seeded source makes runs reproducible.
func Rng(rng rl.Rng) Option {
	return func(it *Iterator) { it.rng = rng }
}

// HistoryLen bounds the diagnostic history ring to the most recent k
// iterations.  Zero (the default) disables history entirely so memory
// stays flat regardless of the iteration budget.
func HistoryLen(k int) Option {
	return func(it *Iterator) { it.hist = newHistory(k) }
}

// DB sets a database into which per-iteration reward, baseline, and weight
// norm are recorded.
func DB(db *sql.DB) Option {
	return func(it *Iterator) { it.db = db }
}

// Iterator holds the mutable state of one REINFORCE run: the weight vector,
// the decayed reward baseline, and the iteration counter.  Each Iterator
// owns its state exclusively; independent iterators never share anything.
type Iterator struct {
	w     []float64
	rbar  float64
	count int

	alpha      float64
	gamma      float64
	decay      float64
	comparison bool

	rng  rl.Rng
	hist *history
	db   *sql.DB
}

// New creates an iterator for n stochastic binary units.  Weights are
// initialized with one standard-normal draw per unit from the injected Rng
// (or the package default if none was injected).  Hyperparameter
// preconditions are checked here, before any iteration can run.
func New(n int, opts ...Option) (*Iterator, error) {
	it := &Iterator{
		alpha: DefaultAlpha,
		gamma: DefaultGamma,
	}
	for _, opt := range opts {
		opt(it)
	}

	switch {
	case n < 1:
		return nil, fmt.Errorf("%w: need a positive unit count, got %v", rl.InvalidConfigErr, n)
	case it.alpha <= 0:
		return nil, fmt.Errorf("%w: alpha must be positive, got %v", rl.InvalidConfigErr, it.alpha)
	case it.gamma < 0 || it.gamma >= 1:
		return nil, fmt.Errorf("%w: gamma must be in [0,1), got %v", rl.InvalidConfigErr, it.gamma)
	case it.decay < 0:
		return nil, fmt.Errorf("%w: weight decay must be non-negative, got %v", rl.InvalidConfigErr, it.decay)
	}

	if it.rng == nil {
		it.rng = rl.Rand
	}

	it.w = make([]float64, n)
	for i := range it.w {
		it.w[i] = it.rng.NormFloat64()
	}

	if err := it.initdb(); err != nil {
		return nil, err
	}
	return it, nil
}

// Dims returns the number of units.
func (it *Iterator) Dims() int { return len(it.w) }

// Iterate performs one REINFORCE step against obj and returns the sampled
// point carrying its reward, along with the single evaluation performed.
func (it *Iterator) Iterate(obj rl.Objectiver) (sample rl.Point, n int, err error) {
	ndim := len(it.w)
	p := make([]float64, ndim)
	y := make([]float64, ndim)
	for i, w := range it.w {
		// Saturation of the logistic at extreme weights is fine; the clamp
		// only has to keep NaN and exact 0/1 out of the Bernoulli draw.
		p[i] = rl.ClampProb(rl.Logistic(w), rl.ProbEps)
		if it.rng.Float64() < p[i] {
			y[i] = 1
		}
	}

	r, err := obj.Objective(y)
	if err != nil {
		return rl.NewPoint(y, math.Inf(-1)), 1, err
	}

	// The advantage uses the baseline from before this step's reward is
	// folded in.
	adv := r
	if it.comparison {
		adv = r - it.rbar
	}
	it.rbar = it.gamma*it.rbar + (1-it.gamma)*r

	for i := range it.w {
		e := y[i] - p[i]
		it.w[i] += it.alpha*adv*e - it.decay*it.w[i]
	}

	it.count++
	it.hist.push(Record{Iter: it.count, Reward: r, Baseline: it.rbar})
	if err := it.updateDb(r); err != nil {
		return rl.NewPoint(y, r), 1, err
	}
	return rl.NewPoint(y, r), 1, nil
}

// Weights returns a copy of the current weight vector.
func (it *Iterator) Weights() []float64 {
	w := make([]float64, len(it.w))
	copy(w, it.w)
	return w
}

// WeightNorm returns the L2 norm of the weight vector.
func (it *Iterator) WeightNorm() float64 { return floats.Norm(it.w, 2) }

// Baseline returns the current decayed reward baseline.
func (it *Iterator) Baseline() float64 { return it.rbar }

// Niter returns the number of iterations performed so far.
func (it *Iterator) Niter() int { return it.count }

// Probs returns the current per-unit success probabilities.
func (it *Iterator) Probs() []float64 {
	p := make([]float64, len(it.w))
	for i, w := range it.w {
		p[i] = rl.ClampProb(rl.Logistic(w), rl.ProbEps)
	}
	return p
}

// History returns the recorded iteration records, oldest first.  Empty
// unless HistoryLen was set.
func (it *Iterator) History() []Record {
	return it.hist.records()
}
