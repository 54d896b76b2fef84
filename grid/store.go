package grid

import (
	"fmt"
	"reflect"
)

// Store owns the authoritative row sequence and the ordered column set.
//
// All mutation is copy-and-replace: a write produces a new Record and swaps it
// into the sequence, so records handed out earlier never change.
type Store struct {
	cols   []Column
	colIdx map[string]int
	rows   []Record
	newRow func() Record
}

// NewStore copies rows and indexes cols by key. newRow builds records for
// inserted rows; nil means an empty Record.
func NewStore(rows []Record, cols []Column, newRow func() Record) (*Store, error) {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		if c == nil {
			return nil, fmt.Errorf("column %d: nil column", i)
		}
		k := c.Key()
		if _, dup := idx[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, k)
		}
		idx[k] = i
	}
	if newRow == nil {
		newRow = func() Record { return Record{} }
	}
	return &Store{
		cols:   append([]Column(nil), cols...),
		colIdx: idx,
		rows:   append([]Record(nil), rows...),
		newRow: newRow,
	}, nil
}

func (s *Store) RowCount() int { return len(s.rows) }

func (s *Store) ColumnCount() int { return len(s.cols) }

func (s *Store) Column(i int) Column {
	if i < 0 || i >= len(s.cols) {
		return nil
	}
	return s.cols[i]
}

// Columns returns a copy of the column order.
func (s *Store) Columns() []Column { return append([]Column(nil), s.cols...) }

func (s *Store) ColumnIndex(key string) (int, bool) {
	i, ok := s.colIdx[key]
	return i, ok
}

func (s *Store) Row(i int) Record {
	if i < 0 || i >= len(s.rows) {
		return nil
	}
	return s.rows[i]
}

// Rows returns a copy of the row sequence. The records themselves are shared
// and must not be mutated.
func (s *Store) Rows() []Record { return append([]Record(nil), s.rows...) }

func (s *Store) inBounds(a Addr) bool {
	return inBounds(a, len(s.cols), len(s.rows))
}

func (s *Store) GetCell(a Addr) any {
	if !s.inBounds(a) {
		return nil
	}
	return s.cols[a.Col].Read(s.rows[a.Row])
}

// DisplayValue is the formatted text of a cell, as copy would produce it.
func (s *Store) DisplayValue(a Addr) string {
	if !s.inBounds(a) {
		return ""
	}
	col := s.cols[a.Col]
	return col.Format(col.Read(s.rows[a.Row]))
}

func (s *Store) Editable(a Addr) bool {
	return s.inBounds(a) && s.cols[a.Col].Editable()
}

// SetCell writes v into the cell at a and returns the replacement record.
//
// Writes to read-only columns are refused with ErrNotEditable and leave the
// store untouched. Writing the value the cell already holds returns the
// current record and an empty Change.
func (s *Store) SetCell(a Addr, v any) (Record, Change, error) {
	if !s.inBounds(a) {
		return nil, Change{}, fmt.Errorf("%w: col=%d row=%d", ErrOutOfBounds, a.Col, a.Row)
	}
	col := s.cols[a.Col]
	if !col.Editable() {
		return nil, Change{}, fmt.Errorf("%w: column %q", ErrNotEditable, col.Key())
	}

	before := s.rows[a.Row]
	cb := newChangeBuilder()
	if sameValue(col.Read(before), v) {
		return before, cb.build(), nil
	}
	after := col.Write(before, v)
	cb.add(Splice{At: a.Row, Before: []Record{before}, After: []Record{after}})
	s.rows[a.Row] = after
	return after, cb.build(), nil
}

// SetCellsInRange rewrites every cell of r with gen. gen receives the current
// value and returns the new one, or false to leave the cell alone.
//
// Read-only cells are skipped and counted in the second return value. Each
// touched row is replaced once, however many of its cells change.
func (s *Store) SetCellsInRange(r Range, gen func(a Addr, cur any) (any, bool)) (Change, int) {
	cb := newChangeBuilder()
	if len(s.rows) == 0 || len(s.cols) == 0 || gen == nil {
		return cb.build(), 0
	}
	r = ClampRange(r, len(s.cols), len(s.rows))

	skipped := 0
	for row := r.Min.Row; row <= r.Max.Row; row++ {
		before := s.rows[row]
		rec := before
		changed := false
		for c := r.Min.Col; c <= r.Max.Col; c++ {
			col := s.cols[c]
			if !col.Editable() {
				skipped++
				continue
			}
			a := Addr{Col: c, Row: row}
			cur := col.Read(rec)
			v, ok := gen(a, cur)
			if !ok || sameValue(cur, v) {
				continue
			}
			rec = col.Write(rec, v)
			changed = true
		}
		if !changed {
			continue
		}
		cb.add(Splice{At: row, Before: []Record{before}, After: []Record{rec}})
		s.rows[row] = rec
	}
	return cb.build(), skipped
}

// sameValue reports whether writing v over cur would leave the cell as it is.
func sameValue(cur, v any) bool { return reflect.DeepEqual(cur, v) }

// InsertRows inserts count fresh rows before row at. at is clamped to
// [0, RowCount].
func (s *Store) InsertRows(at, count int) Change {
	cb := newChangeBuilder()
	if count <= 0 {
		return cb.build()
	}
	at = clampInt(at, 0, len(s.rows))
	fresh := make([]Record, count)
	for i := range fresh {
		fresh[i] = s.newRow()
	}
	sp := Splice{At: at, After: fresh}
	s.splice(sp)
	cb.add(sp)
	return cb.build()
}

// InsertRecords inserts recs before row at.
func (s *Store) InsertRecords(at int, recs []Record) Change {
	cb := newChangeBuilder()
	if len(recs) == 0 {
		return cb.build()
	}
	at = clampInt(at, 0, len(s.rows))
	sp := Splice{At: at, After: append([]Record(nil), recs...)}
	s.splice(sp)
	cb.add(sp)
	return cb.build()
}

// DeleteRows removes rows in the inclusive span [first, last], clamped to the
// existing rows.
func (s *Store) DeleteRows(first, last int) Change {
	cb := newChangeBuilder()
	if len(s.rows) == 0 {
		return cb.build()
	}
	if first > last {
		first, last = last, first
	}
	if last < 0 || first >= len(s.rows) {
		return cb.build()
	}
	first = clampInt(first, 0, len(s.rows)-1)
	last = clampInt(last, 0, len(s.rows)-1)

	sp := Splice{At: first, Before: append([]Record(nil), s.rows[first:last+1]...)}
	s.splice(sp)
	cb.add(sp)
	return cb.build()
}

// ReplaceRows swaps the whole row sequence for rows.
func (s *Store) ReplaceRows(rows []Record) Change {
	cb := newChangeBuilder()
	if len(s.rows) == 0 && len(rows) == 0 {
		return cb.build()
	}
	sp := Splice{
		At:     0,
		Before: append([]Record(nil), s.rows...),
		After:  append([]Record(nil), rows...),
	}
	s.splice(sp)
	cb.add(sp)
	return cb.build()
}

// Apply replays a change descriptor, typically from the undo history.
func (s *Store) Apply(c Change) {
	for _, sp := range c.Splices {
		s.splice(sp)
	}
}

func (s *Store) splice(sp Splice) {
	at := clampInt(sp.At, 0, len(s.rows))
	end := clampInt(at+len(sp.Before), at, len(s.rows))

	if end-at == len(sp.After) {
		copy(s.rows[at:end], sp.After)
		return
	}

	next := make([]Record, 0, len(s.rows)-(end-at)+len(sp.After))
	next = append(next, s.rows[:at]...)
	next = append(next, sp.After...)
	next = append(next, s.rows[end:]...)
	s.rows = next
}
