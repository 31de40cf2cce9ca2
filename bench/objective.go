package bench

import (
	"fmt"
	"math"

	rl "github.com/glarange/RL"
)

// Objective adapts fn to rl.Objectiver.  Unlike wrapping fn.Eval in a bare
// rl.SimpleObjectiver, the adapter retains fn's structural validation and
// rejects vectors of the wrong length.
func Objective(fn Func) rl.Objectiver { return objAdapter{fn} }

type objAdapter struct {
	fn Func
}

func (o objAdapter) Objective(u []float64) (float64, error) {
	if len(u) != o.fn.Dims() {
		return math.Inf(-1), fmt.Errorf("%w: %v wants %v-vectors, got length %v",
			rl.InvalidInputErr, o.fn.Name(), o.fn.Dims(), len(u))
	}
	return o.fn.Eval(u), nil
}

func (o objAdapter) Validate() error {
	if v, ok := o.fn.(rl.Validater); ok {
		return v.Validate()
	}
	return nil
}
