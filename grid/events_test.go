package grid

import "testing"

func TestGrid_SubscribeReceivesOrderedEvents(t *testing.T) {
	g := newPeopleGrid(t, 5, Options{})
	var got []Event
	unsubscribe := g.Subscribe(func(ev Event) { got = append(got, ev) })

	g.MoveTo(Addr{Col: 1, Row: 2})
	if err := g.SetCell(Addr{Col: 1, Row: 2}, "x"); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	g.MoveTo(Addr{Col: 1, Row: 2})

	if len(got) != 2 {
		t.Fatalf("events=%d, want 2", len(got))
	}
	if !got[0].Kind.Has(EventSelection) || got[0].Kind.Has(EventData) {
		t.Fatalf("first kind=%b, want selection only", got[0].Kind)
	}
	if !got[1].Kind.Has(EventData) {
		t.Fatalf("second kind=%b, want data", got[1].Kind)
	}
	if got, want := got[1].Rows, (RowSpan{First: 2, Last: 2}); got != want {
		t.Fatalf("rows=%v, want %v", got, want)
	}
	if got[1].Version <= got[0].Version {
		t.Fatalf("versions not increasing: %d then %d", got[0].Version, got[1].Version)
	}
	if got, want := g.Version(), got[1].Version; got != want {
		t.Fatalf("version=%d, want %d", got, want)
	}

	unsubscribe()
	g.MoveTo(Addr{})
	if len(got) != 2 {
		t.Fatalf("events after unsubscribe=%d, want 2", len(got))
	}
}

func TestGrid_ScrollEmitsViewport(t *testing.T) {
	g := newPeopleGrid(t, 50, Options{})
	g.SetViewportHeight(10)

	var kinds []EventKind
	g.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })

	if !g.Scroll(20) {
		t.Fatalf("expected Scroll=true")
	}
	if g.Scroll(20) {
		t.Fatalf("expected repeated Scroll to be a no-op")
	}
	if len(kinds) != 1 || kinds[0] != EventViewport {
		t.Fatalf("kinds=%v, want [viewport]", kinds)
	}
	if got, want := g.Visible(), (VisibleRange{First: 20, Last: 29}); got != want {
		t.Fatalf("visible=%v, want %v", got, want)
	}
}

func TestGrid_InsertRowsEmitsViewportAndData(t *testing.T) {
	g := newPeopleGrid(t, 3, Options{})
	var last Event
	g.Subscribe(func(ev Event) { last = ev })

	g.InsertRows(1, 2)
	if !last.Kind.Has(EventData) || !last.Kind.Has(EventViewport) {
		t.Fatalf("kind=%b, want data|viewport", last.Kind)
	}
	if got, want := last.Rows, (RowSpan{First: 1, Last: 2}); got != want {
		t.Fatalf("rows=%v, want %v", got, want)
	}
}
