package bench

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/stat"

	rl "github.com/glarange/RL"
)

// Rates summarizes a batch of independent seeded runs.
type Rates struct {
	Nrun     int
	Nsuccess int
	// MeanEvals averages objective evaluation counts across all runs.
	MeanEvals float64
	// MeanBest averages the best reward found across all runs.
	MeanBest float64
}

// Frac returns the success fraction.
func (r Rates) Frac() float64 {
	if r.Nrun == 0 {
		return 0
	}
	return float64(r.Nsuccess) / float64(r.Nrun)
}

// SuccessRate runs nrun independent solvers built by mk, one per seed
// 1..nrun, and aggregates their outcomes.  Runs execute concurrently,
// bounded by the CPU count; each solver owns its weights, baseline, and
// random source, so nothing is shared between them.
func SuccessRate(nrun int, mk func(seed int64) *rl.Solver) Rates {
	states := make([]rl.State, nrun)
	evals := make([]float64, nrun)
	bests := make([]float64, nrun)

	p := pool.New().WithMaxGoroutines(runtime.NumCPU())
	for i := 0; i < nrun; i++ {
		i := i
		p.Go(func() {
			solv := mk(int64(i + 1))
			for solv.Next() {
			}
			states[i] = solv.State()
			evals[i] = float64(solv.Neval())
			bests[i] = solv.Best().Val
		})
	}
	p.Wait()

	r := Rates{Nrun: nrun}
	for _, s := range states {
		if s == rl.Converged {
			r.Nsuccess++
		}
	}
	r.MeanEvals = stat.Mean(evals, nil)
	r.MeanBest = stat.Mean(bests, nil)
	return r
}
