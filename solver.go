package rl

import "fmt"

// State identifies where a run is in its lifecycle.  Converged and
// BudgetExhausted are terminal; callers branch on them to distinguish a
// successful search from an exhausted budget.
type State int

const (
	Running State = iota
	Converged
	BudgetExhausted
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Converged:
		return "Converged"
	case BudgetExhausted:
		return "BudgetExhausted"
	default:
		return fmt.Sprintf("State(%v)", int(s))
	}
}

// DefaultKeep is the elite-archive capacity a Solver uses when Keep is left
// zero.
const DefaultKeep = 16

// Solver drives an Iterator until it samples the known Optimum or MaxIter
// iterations have run.  Each Solver owns its archive and counters; nothing
// is shared between independent solvers, so separate runs (e.g. different
// seeds) can execute concurrently.
//
// Use it in the manner:
//
//	for solv.Next() {
//	}
//	if solv.State() == rl.Converged { ...
type Solver struct {
	Iter Iterator
	Obj  Objectiver
	// Optimum is the known global optimum bit pattern.  Sampling it
	// terminates the run.
	Optimum Point
	// MaxIter caps the number of iterations (one objective evaluation
	// each).
	MaxIter int
	// Keep bounds the elite archive.  Zero means DefaultKeep.
	Keep int

	state   State
	niter   int
	neval   int
	best    *Archive
	last    Point
	err     error
	checked bool
}

func (s *Solver) init() error {
	if s.checked {
		return nil
	}
	if s.MaxIter <= 1 {
		return fmt.Errorf("%w: MaxIter must exceed 1, got %v", InvalidConfigErr, s.MaxIter)
	}
	if d, ok := s.Iter.(Dimser); ok && s.Optimum.Len() != d.Dims() {
		return fmt.Errorf("%w: optimum length %v != problem dimension %v", InvalidInputErr, s.Optimum.Len(), d.Dims())
	}
	if v, ok := s.Obj.(Validater); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	keep := s.Keep
	if keep == 0 {
		keep = DefaultKeep
	}
	s.best = NewArchive(keep)
	s.checked = true
	return nil
}

// Next runs one iteration and reports whether the solver is still Running.
// The first call validates the configuration; a validation failure leaves
// the state Running with Err set and no iterations performed.
func (s *Solver) Next() bool {
	if s.err != nil {
		return false
	}
	if s.err = s.init(); s.err != nil {
		return false
	}
	if s.state != Running {
		return false
	}

	sample, n, err := s.Iter.Iterate(s.Obj)
	s.niter++
	s.neval += n
	s.last = sample
	s.best.Add(sample)
	if err != nil {
		s.err = err
		return false
	}

	if sample.Equal(s.Optimum) {
		s.state = Converged
		return false
	}
	if s.niter >= s.MaxIter {
		s.state = BudgetExhausted
		return false
	}
	return true
}

func (s *Solver) State() State { return s.state }

// Best returns the sample that triggered convergence, or the best sample
// seen so far if the run never converged.
func (s *Solver) Best() Point {
	if s.state == Converged {
		return s.last
	}
	if s.best == nil {
		return Point{}
	}
	return s.best.Best()
}

// Elite returns the archived best samples in descending reward order.
func (s *Solver) Elite() []Point {
	if s.best == nil {
		return nil
	}
	return s.best.Points()
}

// Niter reports the number of iterations run.  It equals the number of
// Iterate calls, with no array-index ambiguity: convergence on the k-th
// call reports k.
func (s *Solver) Niter() int { return s.niter }

// Neval reports the cumulative objective evaluation count.
func (s *Solver) Neval() int { return s.neval }

func (s *Solver) Err() error { return s.err }

// Run validates the configuration and drives a fresh solver to termination,
// returning the terminal state, the result sample, and the iteration count.
// It is the one-call form of the Next loop.
func Run(obj Objectiver, optimum Point, it Iterator, maxiter int) (State, Point, int, error) {
	s := &Solver{Iter: it, Obj: obj, Optimum: optimum, MaxIter: maxiter}
	for s.Next() {
	}
	if s.Err() != nil {
		return s.State(), s.Best(), s.Niter(), s.Err()
	}
	return s.State(), s.Best(), s.Niter(), nil
}
