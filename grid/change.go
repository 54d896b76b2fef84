package grid

// Splice replaces len(Before) records starting at row At with After.
//
// Cell edits are 1:1 splices, inserts have no Before and deletes have no
// After. Records referenced by a splice are never mutated, so a Change can be
// replayed in either direction at any later time.
type Splice struct {
	At     int
	Before []Record
	After  []Record
}

// Change is an ordered, replayable mutation of the row sequence.
type Change struct {
	Splices []Splice
	// Rows is the row span touched by the change, in post-change indices.
	Rows RowSpan
}

func (c Change) IsEmpty() bool { return len(c.Splices) == 0 }

// Invert returns the change that undoes c.
func (c Change) Invert() Change {
	out := Change{
		Splices: make([]Splice, 0, len(c.Splices)),
		Rows:    c.Rows,
	}
	for i := len(c.Splices) - 1; i >= 0; i-- {
		s := c.Splices[i]
		out.Splices = append(out.Splices, Splice{At: s.At, Before: s.After, After: s.Before})
	}
	return out
}

// RowDelta returns how many rows c adds (positive) or removes (negative).
func (c Change) RowDelta() int {
	n := 0
	for _, s := range c.Splices {
		n += len(s.After) - len(s.Before)
	}
	return n
}

type changeBuilder struct {
	splices []Splice
	first   int
	last    int
}

func newChangeBuilder() changeBuilder {
	return changeBuilder{first: -1, last: -1}
}

func (cb *changeBuilder) add(s Splice) {
	cb.splices = append(cb.splices, s)
	first := s.At
	last := s.At + maxInt(len(s.After), len(s.Before)) - 1
	if last < first {
		last = first
	}
	if cb.first < 0 || first < cb.first {
		cb.first = first
	}
	if last > cb.last {
		cb.last = last
	}
}

// merge appends every splice of c in order.
func (cb *changeBuilder) merge(c Change) {
	for _, s := range c.Splices {
		cb.add(s)
	}
}

func (cb *changeBuilder) build() Change {
	if len(cb.splices) == 0 {
		return Change{Rows: RowSpan{First: 0, Last: -1}}
	}
	return Change{
		Splices: append([]Splice(nil), cb.splices...),
		Rows:    RowSpan{First: cb.first, Last: cb.last},
	}
}
