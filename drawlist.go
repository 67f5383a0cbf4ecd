package gl2d

// DrawList is the ordered ledger of draw calls describing how the frame's
// vertex buffer maps onto GPU submissions.
//
// Shapes are recorded in call order and each one only ever extends the
// last run or opens a new one, so the list never needs to look further
// back than its last entry. It is never empty: after Reset it holds a
// single zero-length triangles run.
type DrawList struct {
	calls []DrawCall
}

// NewDrawList returns a reset draw list.
func NewDrawList() *DrawList {
	dl := &DrawList{calls: make([]DrawCall, 0, 16)}
	dl.Reset()
	return dl
}

// Reset restores the single zero-length triangles run.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Reset() {
	dl.calls = append(dl.calls[:0], DrawCall{Topology: Triangles})
}

// last returns the current run, restoring the invariant for a zero-value
// DrawList.
func (dl *DrawList) last() *DrawCall {
	if len(dl.calls) == 0 {
		dl.Reset()
	}
	return &dl.calls[len(dl.calls)-1]
}

// Append records n vertices of topology t, merging into the last run when
// the topology matches.
func (dl *DrawList) Append(t Topology, n int) {
	if n < 0 {
		return
	}
	if last := dl.last(); last.Topology == t {
		last.Count += n
		return
	}
	dl.calls = append(dl.calls, DrawCall{Topology: t, Count: n})
}

// Retract removes n vertices from the last run. It is used to give back
// vertices reserved for glyphs that turned out not to be printable.
func (dl *DrawList) Retract(n int) {
	last := dl.last()
	if n > last.Count {
		n = last.Count
	}
	last.Count -= n
}

// Calls returns the runs in submission order. The slice aliases the list.
func (dl *DrawList) Calls() []DrawCall {
	dl.last()
	return dl.calls
}

// Len returns the number of runs, including empty ones.
func (dl *DrawList) Len() int {
	return len(dl.Calls())
}

// Total returns the number of vertices covered by all runs.
func (dl *DrawList) Total() int {
	n := 0
	for _, dc := range dl.calls {
		n += dc.Count
	}
	return n
}

// Replay calls fn once per non-empty run with the run's starting vertex.
// The offset advances by every run's count, empty or not.
func (dl *DrawList) Replay(fn func(t Topology, start, count int)) {
	start := 0
	for _, dc := range dl.Calls() {
		if dc.Count == 0 {
			continue
		}
		fn(dc.Topology, start, dc.Count)
		start += dc.Count
	}
}
