package sheet

import "github.com/iw2rmb/sheetgrid/grid"

// ChangeEvent is passed to Config.OnChange after every committed grid change.
type ChangeEvent struct {
	Version uint64
	Kind    grid.EventKind
	// Rows is the data row span touched by an EventData change.
	Rows grid.RowSpan

	Active    grid.Addr
	HasActive bool
	Selection struct {
		Range  grid.Range
		Active bool
	}
	Editing bool
}

func buildChangeEvent(g *grid.Grid, ev grid.Event) ChangeEvent {
	out := ChangeEvent{
		Version: ev.Version,
		Kind:    ev.Kind,
		Rows:    ev.Rows,
	}
	out.Active, out.HasActive = g.ActiveCell()
	if r, ok := g.Selection(); ok {
		out.Selection.Active = true
		out.Selection.Range = r
	}
	_, out.Editing = g.Editing()
	return out
}

// TabOutMsg is returned as a command result when Tab or Shift-Tab leaves the
// grid under grid.TabBlur. The sheet has already blurred itself.
type TabOutMsg struct {
	Backward bool
}
