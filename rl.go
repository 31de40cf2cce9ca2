// Package rl provides the core types for stochastic policy-gradient search
// over fixed-length binary vectors: sample points, objective and iterator
// interfaces, and the solver loop that drives an iterator until a known
// optimum is sampled or the iteration budget runs out.
package rl

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// InvalidConfigErr indicates a structural precondition violation (bad
	// hyperparameter, dimension mismatch with an objective's requirements).
	// It is always surfaced before any iteration runs.
	InvalidConfigErr = errors.New("rl: invalid configuration")
	// InvalidInputErr indicates malformed run input such as a known-optimum
	// vector whose length doesn't match the problem dimension.
	InvalidInputErr = errors.New("rl: invalid input")
)

// Rng is the source of randomness injected into iterators.  *math/rand.Rand
// satisfies it.  Every randomized operation in this module draws from an Rng
// so that seeded runs are reproducible.
type Rng interface {
	Float64() float64
	NormFloat64() float64
}

// Rand is the fallback random number generator used when no Rng is injected
// explicitly.  Tests and benchmark drivers overwrite it with a seeded
// generator.
var Rand Rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandFloat returns a uniform float64 in [0, 1) from the package generator.
func RandFloat() float64 { return Rand.Float64() }

// Point is an immutable sample: a fixed-length binary vector together with
// its objective value.  Positions hold exactly 0.0 or 1.0.
type Point struct {
	pos []float64
	Val float64
}

// NewPoint copies pos into a new Point with value val.
func NewPoint(pos []float64, val float64) Point {
	cpos := make([]float64, len(pos))
	copy(cpos, pos)
	return Point{pos: cpos, Val: val}
}

func (p Point) At(i int) float64 { return p.pos[i] }

func (p Point) Len() int { return len(p.pos) }

// Pos returns a copy of the point's bit pattern.
func (p Point) Pos() []float64 {
	pos := make([]float64, len(p.pos))
	copy(pos, p.pos)
	return pos
}

// Equal reports whether p and q have identical bit patterns.  Values are
// ignored.
func (p Point) Equal(q Point) bool {
	if p.Len() != q.Len() {
		return false
	}
	for i := range p.pos {
		if p.pos[i] != q.pos[i] {
			return false
		}
	}
	return true
}

// Hash returns a sha1 digest of the point's bit pattern.  Used for
// deduplicating samples in archives.
func (p Point) Hash() [sha1.Size]byte {
	data := make([]byte, len(p.pos))
	for i, v := range p.pos {
		if v != 0 {
			data[i] = 1
		}
	}
	return sha1.Sum(data)
}

func (p Point) String() string {
	var buf bytes.Buffer
	for _, v := range p.pos {
		if v != 0 {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return fmt.Sprintf("%v (val %v)", buf.String(), p.Val)
}

// Ones returns the all-ones point of length n with value val.
func Ones(n int, val float64) Point {
	pos := make([]float64, n)
	for i := range pos {
		pos[i] = 1
	}
	return NewPoint(pos, val)
}

// Zeros returns the all-zeros point of length n with value val.
func Zeros(n int, val float64) Point {
	return NewPoint(make([]float64, n), val)
}

type Objectiver interface {
	// Objective evaluates the binary vector u and returns the objective
	// function value.  The objective is framed so that higher values are
	// better (it is a reward).  If the evaluation fails, negative infinity
	// should be returned along with an error.
	Objective(u []float64) (float64, error)
}

type SimpleObjectiver func([]float64) float64

func (so SimpleObjectiver) Objective(u []float64) (float64, error) { return so(u), nil }

type Iterator interface {
	// Iterate runs a single step of a solver and reports the sample it
	// evaluated (with its reward) and the number of objective evaluations
	// n performed.
	Iterate(obj Objectiver) (sample Point, n int, err error)
}

// Dimser is implemented by iterators with a fixed problem dimension, letting
// the solver validate the known-optimum vector before the loop starts.
type Dimser interface {
	Dims() int
}

// Validater is implemented by objectives with structural preconditions on
// the problem dimension.
type Validater interface {
	Validate() error
}

// ObjectivePrinter wraps an Objectiver and prints every evaluation with a
// running count.  Useful for ad-hoc tracing.
type ObjectivePrinter struct {
	Objectiver
	Count int
}

func NewObjectivePrinter(obj Objectiver) *ObjectivePrinter {
	return &ObjectivePrinter{Objectiver: obj}
}

func (op *ObjectivePrinter) Objective(u []float64) (float64, error) {
	val, err := op.Objectiver.Objective(u)

	op.Count++
	fmt.Print(op.Count, " ")
	for _, x := range u {
		fmt.Print(x, " ")
	}
	fmt.Println("    ", val)

	return val, err
}
