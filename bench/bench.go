// Package bench provides pseudo-Boolean benchmark objectives with known
// global optima for testing binary-vector solvers, together with helpers
// for driving solvers against them and measuring seeded success rates.
package bench

import (
	"fmt"
	"math"
	"testing"

	rl "github.com/glarange/RL"
)

var AllFuncs = []Func{
	OneMax{NDim: 10},
	OneMax{NDim: 20},
	TwoMax{NDim: 10},
	Porcupine{NDim: 10},
	Porcupine{NDim: 20},
	Plateaus{NDim: 8},
	Plateaus{NDim: 16},
}

type Func interface {
	// Eval scores the binary vector u.  Higher is better.
	Eval(u []float64) float64
	Optima() []rl.Point
	Dims() int
	Name() string
}

func ones(u []float64) int {
	n := 0
	for _, v := range u {
		if v != 0 {
			n++
		}
	}
	return n
}

// OneMax rewards each set bit: J(u) = 10*ones(u).  The global maximum 10n
// is at the all-ones vector.
type OneMax struct {
	NDim int
}

func (fn OneMax) Name() string { return fmt.Sprintf("OneMax_%vD", fn.NDim) }

func (fn OneMax) Dims() int { return fn.NDim }

func (fn OneMax) Eval(u []float64) float64 { return 10 * float64(ones(u)) }

func (fn OneMax) Optima() []rl.Point {
	return []rl.Point{rl.Ones(fn.NDim, 10*float64(fn.NDim))}
}

// TwoMax has two modes: J(u) = 18*|18*ones(u) - 8n|.  The all-ones vector
// scores 180n and is the lone global maximum; the all-zeros vector is the
// deceptive second mode at 144n.
type TwoMax struct {
	NDim int
}

func (fn TwoMax) Name() string { return fmt.Sprintf("TwoMax_%vD", fn.NDim) }

func (fn TwoMax) Dims() int { return fn.NDim }

func (fn TwoMax) Eval(u []float64) float64 {
	n1 := float64(ones(u))
	return 18 * math.Abs(18*n1-8*float64(fn.NDim))
}

func (fn TwoMax) Optima() []rl.Point {
	return []rl.Point{rl.Ones(fn.NDim, 180*float64(fn.NDim))}
}

// Porcupine is deceptive near its maximum: J(u) = 10*ones(u) - 15*(zeros(u)
// mod 2).  All-ones scores 10n, but flipping one bit off pays the parity
// penalty, scoring 10(n-1)-15.
type Porcupine struct {
	NDim int
}

func (fn Porcupine) Name() string { return fmt.Sprintf("Porcupine_%vD", fn.NDim) }

func (fn Porcupine) Dims() int { return fn.NDim }

func (fn Porcupine) Eval(u []float64) float64 {
	n1 := ones(u)
	n0 := len(u) - n1
	return 10*float64(n1) - 15*float64(n0%2)
}

func (fn Porcupine) Optima() []rl.Point {
	return []rl.Point{rl.Ones(fn.NDim, 10*float64(fn.NDim))}
}

// Plateaus partitions u into four contiguous quartiles and scores each as
// the product of 2.5*n*u[i] over the quartile, so any zero bit wipes out
// its whole quartile's contribution: J(u) = sum over k of
// prod(2.5*n*u[i], i in [k*n/4, (k+1)*n/4)).  NDim must be a multiple of
// four.
type Plateaus struct {
	NDim int
}

func (fn Plateaus) Name() string { return fmt.Sprintf("Plateaus_%vD", fn.NDim) }

func (fn Plateaus) Dims() int { return fn.NDim }

func (fn Plateaus) Validate() error {
	if fn.NDim%4 != 0 || fn.NDim == 0 {
		return fmt.Errorf("%w: Plateaus needs a dimension divisible by 4, got %v", rl.InvalidConfigErr, fn.NDim)
	}
	return nil
}

func (fn Plateaus) Eval(u []float64) float64 {
	n := fn.NDim
	q := n / 4
	tot := 0.0
	for k := 0; k < 4; k++ {
		prod := 1.0
		for i := k * q; i < (k+1)*q; i++ {
			prod *= 2.5 * float64(n) * u[i]
		}
		tot += prod
	}
	return tot
}

func (fn Plateaus) Optima() []rl.Point {
	n := fn.NDim
	val := 4 * math.Pow(2.5*float64(n), float64(n)/4)
	return []rl.Point{rl.Ones(n, val)}
}

// Benchmark drives solv to termination against fn and logs the outcome.
// Solver errors are reported as test failures; budget exhaustion is logged,
// not failed, since a seeded stochastic search legitimately misses.
func Benchmark(t *testing.T, solv *rl.Solver, fn Func) {
	for solv.Next() {
	}
	if err := solv.Err(); err != nil {
		t.Errorf("[%v] solver error: %v", fn.Name(), err)
		return
	}

	optimum := fn.Optima()[0]
	t.Logf("[%v] %v after %v evals: best %v (optimum val %v)",
		fn.Name(), solv.State(), solv.Neval(), solv.Best(), optimum.Val)
}
