package team

// Record is one iteration's diagnostic snapshot.
type Record struct {
	Iter     int
	Reward   float64
	Baseline float64
}

// history is a fixed-capacity ring of the most recent records.  Its size is
// chosen independently of the iteration budget, unlike a full-length
// per-iteration trace.  A nil history accepts pushes and records nothing.
type history struct {
	buf   []Record
	next  int
	total int
}

func newHistory(k int) *history {
	if k < 1 {
		return nil
	}
	return &history{buf: make([]Record, k)}
}

func (h *history) push(rec Record) {
	if h == nil {
		return
	}
	h.buf[h.next] = rec
	h.next = (h.next + 1) % len(h.buf)
	h.total++
}

// records returns the retained records, oldest first.
func (h *history) records() []Record {
	if h == nil || h.total == 0 {
		return nil
	}
	n := h.total
	if n > len(h.buf) {
		n = len(h.buf)
	}
	out := make([]Record, 0, n)
	start := (h.next - n + len(h.buf)) % len(h.buf)
	for i := 0; i < n; i++ {
		out = append(out, h.buf[(start+i)%len(h.buf)])
	}
	return out
}
