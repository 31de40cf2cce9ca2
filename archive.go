package rl

import (
	"bytes"
	"crypto/sha1"

	"github.com/petar/GoLLRB/llrb"
)

type archiveItem struct {
	p Point
	h [sha1.Size]byte
}

// Less orders items by ascending value so the tree minimum is always the
// eviction candidate.  Ties break on the sample hash to keep distinct
// samples with equal rewards from colliding in the tree.
func (a archiveItem) Less(than llrb.Item) bool {
	b := than.(archiveItem)
	if a.p.Val != b.p.Val {
		return a.p.Val < b.p.Val
	}
	return bytes.Compare(a.h[:], b.h[:]) < 0
}

// Archive keeps the best distinct samples seen during a run, bounded at a
// fixed capacity so memory stays independent of the iteration budget.
// Samples are deduplicated by bit pattern; re-adding a seen pattern is a
// no-op.
type Archive struct {
	cap  int
	tree *llrb.LLRB
	seen map[[sha1.Size]byte]struct{}
}

// NewArchive creates an archive holding at most cap samples.  cap must be
// positive.
func NewArchive(cap int) *Archive {
	if cap < 1 {
		panic("rl: archive capacity must be positive")
	}
	return &Archive{
		cap:  cap,
		tree: llrb.New(),
		seen: map[[sha1.Size]byte]struct{}{},
	}
}

// Add inserts p, evicting the worst archived sample if the archive is full
// and p beats it.
func (a *Archive) Add(p Point) {
	h := p.Hash()
	if _, ok := a.seen[h]; ok {
		return
	}

	if a.tree.Len() >= a.cap {
		worst := a.tree.Min().(archiveItem)
		if p.Val <= worst.p.Val {
			return
		}
		a.tree.DeleteMin()
		delete(a.seen, worst.h)
	}

	a.tree.ReplaceOrInsert(archiveItem{p: p, h: h})
	a.seen[h] = struct{}{}
}

func (a *Archive) Len() int { return a.tree.Len() }

// Best returns the highest-valued archived sample.  The zero Point is
// returned if the archive is empty.
func (a *Archive) Best() Point {
	if a.tree.Len() == 0 {
		return Point{}
	}
	return a.tree.Max().(archiveItem).p
}

// Points returns the archived samples in descending value order.
func (a *Archive) Points() []Point {
	if a.tree.Len() == 0 {
		return nil
	}
	points := make([]Point, 0, a.tree.Len())
	a.tree.DescendLessOrEqual(a.tree.Max(), func(i llrb.Item) bool {
		points = append(points, i.(archiveItem).p)
		return true
	})
	return points
}
