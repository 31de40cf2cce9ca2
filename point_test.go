package rl

import "testing"

func TestPointEqual(t *testing.T) {
	p := NewPoint([]float64{1, 0, 1}, 20)
	q := NewPoint([]float64{1, 0, 1}, 99)
	r := NewPoint([]float64{1, 1, 1}, 20)
	short := NewPoint([]float64{1, 0}, 20)

	if !p.Equal(q) {
		t.Errorf("points with equal bits but different vals compare unequal")
	}
	if p.Equal(r) {
		t.Errorf("points with different bits compare equal")
	}
	if p.Equal(short) {
		t.Errorf("points with different lengths compare equal")
	}
}

func TestPointImmutable(t *testing.T) {
	pos := []float64{1, 0, 1}
	p := NewPoint(pos, 0)
	pos[0] = 0
	if p.At(0) != 1 {
		t.Errorf("mutating the source slice changed the point")
	}

	p.Pos()[1] = 1
	if p.At(1) != 0 {
		t.Errorf("mutating a Pos() copy changed the point")
	}
}

func TestPointHash(t *testing.T) {
	p := NewPoint([]float64{1, 0, 1}, 0)
	q := NewPoint([]float64{1, 0, 1}, 123)
	r := NewPoint([]float64{0, 0, 1}, 0)

	if p.Hash() != q.Hash() {
		t.Errorf("hash depends on value, want bit pattern only")
	}
	if p.Hash() == r.Hash() {
		t.Errorf("distinct bit patterns hashed equal")
	}
}
