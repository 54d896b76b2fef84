package grid

import "testing"

func TestNavigate_ArrowsClampAtEdges(t *testing.T) {
	s := NewSelection(3, 4, TabStop)
	cases := []struct {
		dir  Direction
		want Addr
	}{
		{DirUp, Addr{Col: 0, Row: 0}},
		{DirLeft, Addr{Col: 0, Row: 0}},
		{DirDown, Addr{Col: 0, Row: 1}},
		{DirRight, Addr{Col: 1, Row: 1}},
		{DirEnd, Addr{Col: 2, Row: 1}},
		{DirRight, Addr{Col: 2, Row: 1}},
		{DirGridEnd, Addr{Col: 2, Row: 3}},
		{DirDown, Addr{Col: 2, Row: 3}},
		{DirHome, Addr{Col: 0, Row: 3}},
		{DirGridHome, Addr{Col: 0, Row: 0}},
	}
	for i, tc := range cases {
		s.Navigate(tc.dir, false)
		a, _ := s.ActiveCell()
		if a != tc.want {
			t.Fatalf("step %d (%v): active=%v, want %v", i, tc.dir, a, tc.want)
		}
	}
}

func TestNavigate_ExtendMovesFocusCorner(t *testing.T) {
	s := NewSelection(5, 5, TabStop)
	s.MoveTo(Addr{Col: 2, Row: 2})
	s.Navigate(DirDown, true)
	s.Navigate(DirDown, true)
	s.Navigate(DirLeft, true)

	a, _ := s.ActiveCell()
	if got, want := a, (Addr{Col: 2, Row: 2}); got != want {
		t.Fatalf("active=%v, want %v", got, want)
	}
	if got, want := s.Focus(), (Addr{Col: 1, Row: 4}); got != want {
		t.Fatalf("focus=%v, want %v", got, want)
	}
	r, _ := s.Range()
	if got, want := r, (Range{Min: Addr{Col: 1, Row: 2}, Max: Addr{Col: 2, Row: 4}}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}

	// Shrinking back past the active cell flips the range.
	s.Navigate(DirUp, true)
	s.Navigate(DirUp, true)
	s.Navigate(DirUp, true)
	r, _ = s.Range()
	if got, want := r, (Range{Min: Addr{Col: 1, Row: 1}, Max: Addr{Col: 2, Row: 2}}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}
}

func TestNavigate_TabWrapsRows(t *testing.T) {
	s := NewSelection(3, 2, TabStop)
	s.MoveTo(Addr{Col: 2, Row: 0})
	s.Navigate(DirTab, false)
	a, _ := s.ActiveCell()
	if got, want := a, (Addr{Col: 0, Row: 1}); got != want {
		t.Fatalf("tab: active=%v, want %v", got, want)
	}
	s.Navigate(DirShiftTab, false)
	a, _ = s.ActiveCell()
	if got, want := a, (Addr{Col: 2, Row: 0}); got != want {
		t.Fatalf("shift+tab: active=%v, want %v", got, want)
	}
}

func TestNavigate_TabPoliciesAtCorners(t *testing.T) {
	last := Addr{Col: 2, Row: 1}
	cases := []struct {
		policy      TabPolicy
		wantActive  Addr
		wantEscaped bool
	}{
		{TabStop, last, false},
		{TabWrap, Addr{}, false},
		{TabBlur, last, true},
	}
	for _, tc := range cases {
		s := NewSelection(3, 2, tc.policy)
		s.MoveTo(last)
		_, escaped := s.Navigate(DirTab, false)
		a, _ := s.ActiveCell()
		if a != tc.wantActive || escaped != tc.wantEscaped {
			t.Fatalf("policy %d: active=%v escaped=%v, want %v %v", tc.policy, a, escaped, tc.wantActive, tc.wantEscaped)
		}
	}

	s := NewSelection(3, 2, TabWrap)
	s.Navigate(DirShiftTab, false)
	a, _ := s.ActiveCell()
	if got, want := a, last; got != want {
		t.Fatalf("shift+tab wrap: active=%v, want %v", got, want)
	}
}

func TestNavigate_PageUsesPageRows(t *testing.T) {
	s := NewSelection(1, 50, TabStop)
	s.SetPageRows(10)
	s.Navigate(DirPageDown, false)
	s.Navigate(DirPageDown, false)
	a, _ := s.ActiveCell()
	if got, want := a.Row, 20; got != want {
		t.Fatalf("row=%d, want %d", got, want)
	}
	s.Navigate(DirPageUp, false)
	s.Navigate(DirPageUp, false)
	s.Navigate(DirPageUp, false)
	a, _ = s.ActiveCell()
	if got, want := a.Row, 0; got != want {
		t.Fatalf("row=%d, want %d", got, want)
	}
}

func TestGrid_NavigateFollowsActiveRow(t *testing.T) {
	g := newPeopleGrid(t, 100, Options{})
	g.SetViewportHeight(10)

	g.Navigate(DirPageDown, false)
	a := mustActive(t, g)
	if got, want := a.Row, 10; got != want {
		t.Fatalf("row=%d, want %d", got, want)
	}
	if v := g.Visible(); !v.Contains(a.Row) {
		t.Fatalf("visible=%v does not contain row %d", v, a.Row)
	}

	g.Navigate(DirGridEnd, false)
	if got, want := g.Windower().Offset(), 90; got != want {
		t.Fatalf("offset=%d, want %d", got, want)
	}
}
