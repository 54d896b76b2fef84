package grid

// SelectionState is the state of the selection machine.
type SelectionState uint8

const (
	// StateIdle means there is no active cell (the grid has no rows or columns).
	StateIdle SelectionState = iota
	// StateActive means a single active cell, with no range or a one-cell range.
	StateActive
	// StateExtending means a range is being extended from the active cell.
	StateExtending
)

func (s SelectionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateExtending:
		return "extending"
	default:
		return "unknown"
	}
}

// TabPolicy decides what Tab does on the last cell (and Shift-Tab on the
// first one).
type TabPolicy uint8

const (
	// TabStop keeps the active cell in place.
	TabStop TabPolicy = iota
	// TabWrap wraps around to the opposite corner of the grid.
	TabWrap
	// TabBlur keeps the selection and reports that focus should leave the grid.
	TabBlur
)

// SelectionSnapshot is a restorable copy of the selection state.
type SelectionSnapshot struct {
	State     SelectionState
	Active    Addr
	HasActive bool
	Focus     Addr
	Range     Range
	HasRange  bool
}

// Selection is the active-cell and selection-range state machine.
//
// The active cell doubles as the anchor for range extension. focus is the
// opposite, moving corner: keyboard extension steps from it.
type Selection struct {
	cols int
	rows int

	state     SelectionState
	active    Addr
	hasActive bool
	focus     Addr
	rng       Range
	hasRange  bool

	tab  TabPolicy
	page int
}

// NewSelection returns a selection for a cols x rows grid with the active cell
// at the origin, or idle when the grid is empty.
func NewSelection(cols, rows int, tab TabPolicy) *Selection {
	s := &Selection{tab: tab, page: 1}
	s.SetBounds(cols, rows)
	return s
}

func (s *Selection) State() SelectionState { return s.state }

func (s *Selection) ActiveCell() (Addr, bool) { return s.active, s.hasActive }

// Range returns the current selection range. ok is false for the "no range"
// state, which is distinct from a single-cell range.
func (s *Selection) Range() (r Range, ok bool) { return s.rng, s.hasRange }

// Focus returns the moving corner of the current range.
func (s *Selection) Focus() Addr { return s.focus }

// Bounds returns the grid size the selection is clamped to.
func (s *Selection) Bounds() (cols, rows int) { return s.cols, s.rows }

func (s *Selection) empty() bool { return s.cols <= 0 || s.rows <= 0 }

func (s *Selection) clamp(a Addr) Addr { return ClampAddr(a, s.cols, s.rows) }

func (s *Selection) setIdle() {
	s.state = StateIdle
	s.active = Addr{}
	s.hasActive = false
	s.focus = Addr{}
	s.rng = Range{}
	s.hasRange = false
}

// MoveTo makes a (clamped) the active cell and collapses the range onto it.
func (s *Selection) MoveTo(a Addr) bool {
	if s.empty() {
		return false
	}
	a = s.clamp(a)
	next := SelectionSnapshot{
		State:     StateActive,
		Active:    a,
		HasActive: true,
		Focus:     a,
		Range:     CellRange(a),
		HasRange:  true,
	}
	return s.apply(next)
}

// ExtendTo stretches the range from the active cell to a (clamped). The
// active cell does not move.
func (s *Selection) ExtendTo(a Addr) bool {
	if s.empty() {
		return false
	}
	if !s.hasActive {
		return s.MoveTo(a)
	}
	a = s.clamp(a)
	next := s.Snapshot()
	next.State = StateExtending
	next.Focus = a
	next.Range = RangeBetween(s.active, a)
	next.HasRange = true
	return s.apply(next)
}

// SelectAll selects the full grid rectangle, keeping the active cell.
func (s *Selection) SelectAll() bool {
	if s.empty() {
		return false
	}
	full := Range{Min: Addr{}, Max: Addr{Col: s.cols - 1, Row: s.rows - 1}}
	next := s.Snapshot()
	next.Range = full
	next.HasRange = true
	next.Focus = oppositeCorner(full, s.active)
	next.State = StateActive
	if !full.IsCell() {
		next.State = StateExtending
	}
	return s.apply(next)
}

// SetSelection replaces the range. nil clears it, leaving the active cell as
// is. An active cell outside the new range is reset to the range's Min.
func (s *Selection) SetSelection(r *Range) bool {
	if s.empty() {
		return false
	}
	next := s.Snapshot()
	if r == nil {
		next.Range = Range{}
		next.HasRange = false
		next.Focus = next.Active
		next.State = StateActive
		return s.apply(next)
	}

	rng := ClampRange(*r, s.cols, s.rows)
	if !next.HasActive || !rng.Contains(next.Active) {
		next.Active = rng.Min
		next.HasActive = true
	}
	next.Range = rng
	next.HasRange = true
	next.Focus = oppositeCorner(rng, next.Active)
	next.State = StateActive
	if !rng.IsCell() {
		next.State = StateExtending
	}
	return s.apply(next)
}

// SetBounds clamps the selection into a resized grid.
//
// A removed active row is replaced by the row that now has its index, or by
// the last row when the removal was at the end.
func (s *Selection) SetBounds(cols, rows int) bool {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	prev := s.Snapshot()
	s.cols, s.rows = cols, rows
	if s.empty() {
		s.setIdle()
		return prev != s.Snapshot()
	}

	next := prev
	if !next.HasActive {
		next = SelectionSnapshot{
			State:     StateActive,
			HasActive: true,
			Range:     CellRange(Addr{}),
			HasRange:  true,
		}
	}
	next.Active = s.clamp(next.Active)
	next.Focus = s.clamp(next.Focus)
	if next.HasRange {
		next.Range = ClampRange(next.Range, cols, rows)
		if !next.Range.Contains(next.Active) {
			next.Range = CellRange(next.Active)
			next.Focus = next.Active
		}
		if !next.Range.Contains(next.Focus) {
			next.Focus = oppositeCorner(next.Range, next.Active)
		}
	}
	if next.State == StateIdle {
		next.State = StateActive
	}
	if next.State == StateExtending && (!next.HasRange || next.Range.IsCell()) {
		next.State = StateActive
	}
	s.restore(next)
	return prev != s.Snapshot()
}

// Snapshot returns the current state for a later Restore.
func (s *Selection) Snapshot() SelectionSnapshot {
	return SelectionSnapshot{
		State:     s.state,
		Active:    s.active,
		HasActive: s.hasActive,
		Focus:     s.focus,
		Range:     s.rng,
		HasRange:  s.hasRange,
	}
}

// Restore reinstates a snapshot, clamped into the current bounds.
func (s *Selection) Restore(snap SelectionSnapshot) bool {
	prev := s.Snapshot()
	if s.empty() {
		s.setIdle()
		return prev != s.Snapshot()
	}
	s.restore(snap)
	s.SetBounds(s.cols, s.rows)
	return prev != s.Snapshot()
}

func (s *Selection) restore(snap SelectionSnapshot) {
	s.state = snap.State
	s.active = snap.Active
	s.hasActive = snap.HasActive
	s.focus = snap.Focus
	s.hasRange = snap.HasRange
	s.rng = Range{}
	if snap.HasRange {
		s.rng = NormalizeRange(snap.Range)
	}
}

func (s *Selection) apply(next SelectionSnapshot) bool {
	if next == s.Snapshot() {
		return false
	}
	s.restore(next)
	return true
}

// oppositeCorner returns the corner of r farthest from a on both axes.
func oppositeCorner(r Range, a Addr) Addr {
	out := r.Max
	if a.Col == r.Max.Col {
		out.Col = r.Min.Col
	}
	if a.Row == r.Max.Row {
		out.Row = r.Min.Row
	}
	return out
}
