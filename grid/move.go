package grid

// Direction is one navigation step.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirTab      // next column, wrapping to the next row
	DirShiftTab // previous column, wrapping to the previous row
	DirHome     // first column of the row
	DirEnd      // last column of the row
	DirGridHome // first cell of the grid
	DirGridEnd  // last cell of the grid
	DirPageUp
	DirPageDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTab:
		return "tab"
	case DirShiftTab:
		return "shift+tab"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	case DirGridHome:
		return "grid-home"
	case DirGridEnd:
		return "grid-end"
	case DirPageUp:
		return "page-up"
	case DirPageDown:
		return "page-down"
	default:
		return "unknown"
	}
}

// SetPageRows sets how many rows DirPageUp/DirPageDown travel.
func (s *Selection) SetPageRows(n int) {
	if n < 1 {
		n = 1
	}
	s.page = n
}

// SetTabPolicy changes the Tab behavior at the grid corners.
func (s *Selection) SetTabPolicy(p TabPolicy) { s.tab = p }

// Navigate moves one step in dir. With extend the range's moving corner steps
// and the active cell stays; otherwise the active cell steps and the range
// collapses onto it.
//
// escaped is true when Tab/Shift-Tab ran off the grid under TabBlur.
func (s *Selection) Navigate(dir Direction, extend bool) (changed, escaped bool) {
	if s.empty() || !s.hasActive {
		return false, false
	}

	if dir == DirTab || dir == DirShiftTab {
		next, ok := s.tabStep(s.active, dir == DirTab)
		if !ok {
			return false, true
		}
		return s.MoveTo(next), false
	}

	if extend {
		return s.ExtendTo(s.step(s.focus, dir)), false
	}
	return s.MoveTo(s.step(s.active, dir)), false
}

func (s *Selection) step(from Addr, dir Direction) Addr {
	lastCol, lastRow := s.cols-1, s.rows-1
	page := s.page
	if page < 1 {
		page = 1
	}

	switch dir {
	case DirUp:
		from.Row--
	case DirDown:
		from.Row++
	case DirLeft:
		from.Col--
	case DirRight:
		from.Col++
	case DirHome:
		from.Col = 0
	case DirEnd:
		from.Col = lastCol
	case DirGridHome:
		from = Addr{}
	case DirGridEnd:
		from = Addr{Col: lastCol, Row: lastRow}
	case DirPageUp:
		from.Row -= page
	case DirPageDown:
		from.Row += page
	}
	return s.clamp(from)
}

// tabStep returns the Tab (forward) or Shift-Tab target. ok is false when
// the step leaves the grid under TabBlur.
func (s *Selection) tabStep(from Addr, forward bool) (Addr, bool) {
	lastCol, lastRow := s.cols-1, s.rows-1

	if forward {
		switch {
		case from.Col < lastCol:
			return Addr{Col: from.Col + 1, Row: from.Row}, true
		case from.Row < lastRow:
			return Addr{Col: 0, Row: from.Row + 1}, true
		}
		switch s.tab {
		case TabWrap:
			return Addr{}, true
		case TabBlur:
			return from, false
		default:
			return from, true
		}
	}

	switch {
	case from.Col > 0:
		return Addr{Col: from.Col - 1, Row: from.Row}, true
	case from.Row > 0:
		return Addr{Col: lastCol, Row: from.Row - 1}, true
	}
	switch s.tab {
	case TabWrap:
		return Addr{Col: lastCol, Row: lastRow}, true
	case TabBlur:
		return from, false
	default:
		return from, true
	}
}
