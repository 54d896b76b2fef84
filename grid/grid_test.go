package grid

import (
	"errors"
	"testing"
)

func displayGrid(g *Grid) [][]string {
	out := make([][]string, g.RowCount())
	for row := range out {
		out[row] = make([]string, g.ColumnCount())
		for col := range out[row] {
			out[row][col] = g.DisplayValue(Addr{Col: col, Row: row})
		}
	}
	return out
}

func equalDisplay(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestGrid_PasteGrowsRows(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		wantRows int
	}{
		{name: "two-rows", text: "a\tb\nc\td", wantRows: 11},
		{name: "three-rows", text: "a\tb\nc\td\ne\tf", wantRows: 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newPeopleGrid(t, 10, Options{})
			g.MoveTo(Addr{Col: 1, Row: 9})

			res := g.Paste(tc.text)
			if got := g.RowCount(); got != tc.wantRows {
				t.Fatalf("rows=%d, want %d", got, tc.wantRows)
			}
			if got, want := res.RowsInserted, tc.wantRows-10; got != want {
				t.Fatalf("inserted=%d, want %d", got, want)
			}
			if got, want := g.DisplayValue(Addr{Col: 2, Row: 10}), "d"; got != want {
				t.Fatalf("(2,10)=%q, want %q", got, want)
			}
			wantBlock := Range{Min: Addr{Col: 1, Row: 9}, Max: Addr{Col: 2, Row: tc.wantRows - 1}}
			if got := mustRange(t, g); got != wantBlock {
				t.Fatalf("selection=%v, want %v", got, wantBlock)
			}

			if !g.Undo() {
				t.Fatalf("expected Undo=true")
			}
			if got, want := g.RowCount(), 10; got != want {
				t.Fatalf("rows after undo=%d, want %d", got, want)
			}
			if got, want := g.DisplayValue(Addr{Col: 1, Row: 9}), "first9"; got != want {
				t.Fatalf("(1,9) after undo=%q, want %q", got, want)
			}
		})
	}
}

func TestGrid_PasteLockRowsTruncates(t *testing.T) {
	g := newPeopleGrid(t, 10, Options{LockRows: true})
	g.MoveTo(Addr{Col: 1, Row: 9})

	res := g.Paste("a\tb\nc\td")
	if got, want := g.RowCount(), 10; got != want {
		t.Fatalf("rows=%d, want %d", got, want)
	}
	if !res.Truncated {
		t.Fatalf("expected Truncated=true")
	}
	if got, want := res.Applied, 2; got != want {
		t.Fatalf("applied=%d, want %d", got, want)
	}
}

func TestGrid_PasteSkipsBadCells(t *testing.T) {
	g, err := New(mixedRows(), mixedColumns(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.MoveTo(Addr{Col: 1, Row: 0})

	res := g.Paste("Bob\tforty\tyes\textra")
	if !res.Truncated {
		t.Fatalf("expected Truncated=true for the extra column")
	}
	if got, want := len(res.Skipped), 1; got != want {
		t.Fatalf("skipped=%d, want %d", got, want)
	}
	if got, want := g.DisplayValue(Addr{Col: 2, Row: 0}), "36"; got != want {
		t.Fatalf("age=%q, want %q (left untouched)", got, want)
	}
	if got, want := g.DisplayValue(Addr{Col: 1, Row: 0}), "Bob"; got != want {
		t.Fatalf("name=%q, want %q", got, want)
	}
}

func TestGrid_PasteSingleValueFillsSelection(t *testing.T) {
	g := newPeopleGrid(t, 5, Options{})
	g.MoveTo(Addr{Col: 1, Row: 1})
	g.ExtendTo(Addr{Col: 2, Row: 3})

	res := g.Paste("same")
	if got, want := res.Applied, 6; got != want {
		t.Fatalf("applied=%d, want %d", got, want)
	}
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 2; col++ {
			if got := g.DisplayValue(Addr{Col: col, Row: row}); got != "same" {
				t.Fatalf("(%d,%d)=%q, want %q", col, row, got, "same")
			}
		}
	}
}

func TestGrid_CopyPasteRoundTrip(t *testing.T) {
	g := newPeopleGrid(t, 6, Options{})
	g.MoveTo(Addr{Col: 0, Row: 0})
	g.ExtendTo(Addr{Col: 2, Row: 1})
	text := g.Copy()

	g.MoveTo(Addr{Col: 0, Row: 4})
	g.Paste(text)
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			src := g.GetCell(Addr{Col: col, Row: row})
			dst := g.GetCell(Addr{Col: col, Row: row + 4})
			if src != dst {
				t.Fatalf("(%d,%d)=%v, want %v", col, row+4, dst, src)
			}
		}
	}
}

func TestGrid_ClearCellsLeavesReadOnly(t *testing.T) {
	g, err := New(mixedRows(), mixedColumns(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.MoveTo(Addr{})
	g.ExtendTo(Addr{Col: 3, Row: 0})

	if got, want := g.ClearCells(), 3; got != want {
		t.Fatalf("cleared=%d, want %d", got, want)
	}
	if got, want := g.GetCell(Addr{Col: 0, Row: 0}), any(1); got != want {
		t.Fatalf("id=%v, want %v", got, want)
	}
	if got := g.GetCell(Addr{Col: 1, Row: 0}); got != nil {
		t.Fatalf("name=%v, want nil", got)
	}
	if got, want := g.GetCell(Addr{Col: 3, Row: 0}), any(false); got != want {
		t.Fatalf("member=%v, want %v", got, want)
	}
}

func TestGrid_CutCopiesThenClears(t *testing.T) {
	g := newPeopleGrid(t, 3, Options{})
	g.MoveTo(Addr{Col: 1, Row: 2})
	if got, want := g.Cut(), "first2"; got != want {
		t.Fatalf("cut=%q, want %q", got, want)
	}
	if got, want := g.DisplayValue(Addr{Col: 1, Row: 2}), ""; got != want {
		t.Fatalf("after cut=%q, want %q", got, want)
	}
}

func TestGrid_UndoRedoRestoresExactState(t *testing.T) {
	g := newPeopleGrid(t, 6, Options{})
	g.MoveTo(Addr{Col: 1, Row: 1})
	start := displayGrid(g)
	startSel := g.SelectionSnapshot()

	if err := g.SetCell(Addr{Col: 1, Row: 1}, "Grace"); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	g.InsertRows(2, 2)
	g.MoveTo(Addr{Col: 0, Row: 5})
	g.Toggle()
	g.DeleteRows(0, 0)
	g.MoveTo(Addr{Col: 2, Row: 4})
	g.Paste("x\ny\nz\nw")
	g.DuplicateRows(1, 2)
	end := displayGrid(g)
	endSel := g.SelectionSnapshot()

	undos := 0
	for g.Undo() {
		undos++
	}
	if got, want := undos, 6; got != want {
		t.Fatalf("undos=%d, want %d", got, want)
	}
	if got := displayGrid(g); !equalDisplay(got, start) {
		t.Fatalf("after undo:\n%q\nwant\n%q", got, start)
	}
	if got := g.SelectionSnapshot(); got != startSel {
		t.Fatalf("selection after undo=%v, want %v", got, startSel)
	}

	for g.Redo() {
	}
	if got := displayGrid(g); !equalDisplay(got, end) {
		t.Fatalf("after redo:\n%q\nwant\n%q", got, end)
	}
	if got := g.SelectionSnapshot(); got != endSel {
		t.Fatalf("selection after redo=%v, want %v", got, endSel)
	}
}

func TestGrid_HistoryLimitEvicts(t *testing.T) {
	g := newPeopleGrid(t, 3, Options{HistoryLimit: 2})
	for i, v := range []string{"a", "b", "c"} {
		if err := g.SetCell(Addr{Col: 1, Row: i}, v); err != nil {
			t.Fatalf("SetCell: %v", err)
		}
	}
	if !g.Undo() || !g.Undo() {
		t.Fatalf("expected two undos")
	}
	if g.Undo() {
		t.Fatalf("expected the oldest entry to be evicted")
	}
	if got, want := g.DisplayValue(Addr{Col: 1, Row: 0}), "a"; got != want {
		t.Fatalf("(1,0)=%q, want %q", got, want)
	}
}

func TestGrid_ReadOnlyRefusesMutation(t *testing.T) {
	g := newPeopleGrid(t, 3, Options{ReadOnly: true})
	before := displayGrid(g)

	if err := g.SetCell(Addr{Col: 1, Row: 0}, "x"); !errors.Is(err, ErrNotEditable) {
		t.Fatalf("err=%v, want ErrNotEditable", err)
	}
	g.Paste("x\ty")
	g.ClearCells()
	g.Toggle()
	if g.InsertRows(0, 1) {
		t.Fatalf("expected InsertRows=false")
	}
	if _, err := g.BeginEdit(); !errors.Is(err, ErrNotEditable) {
		t.Fatalf("err=%v, want ErrNotEditable", err)
	}
	if got := displayGrid(g); !equalDisplay(got, before) {
		t.Fatalf("grid changed under ReadOnly")
	}
	if got, want := g.Copy(), "true"; got != want {
		t.Fatalf("copy=%q, want %q", got, want)
	}
}

func TestGrid_ToggleFlipsCheckbox(t *testing.T) {
	g := newPeopleGrid(t, 2, Options{})
	if !g.IsToggle(Addr{}) || g.IsToggle(Addr{Col: 1}) {
		t.Fatalf("IsToggle mismatch")
	}
	if !g.Toggle() {
		t.Fatalf("expected Toggle=true")
	}
	if got, want := g.GetCell(Addr{}), any(false); got != want {
		t.Fatalf("active=%v, want %v", got, want)
	}
	g.MoveTo(Addr{Col: 1, Row: 0})
	if g.Toggle() {
		t.Fatalf("expected Toggle=false on a text cell")
	}
}

func TestGrid_SetActiveCellByKey(t *testing.T) {
	g := newPeopleGrid(t, 10, Options{})
	if err := g.SetActiveCell(CellRef{Key: "lastName", Row: 4}); err != nil {
		t.Fatalf("SetActiveCell: %v", err)
	}
	if got, want := mustActive(t, g), (Addr{Col: 2, Row: 4}); got != want {
		t.Fatalf("active=%v, want %v", got, want)
	}
	if err := g.SetActiveCell(CellRef{Key: "missing"}); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("err=%v, want ErrUnknownColumn", err)
	}
}

func TestGrid_ReplaceRowsClearsHistory(t *testing.T) {
	g := newPeopleGrid(t, 5, Options{})
	g.MoveTo(Addr{Col: 1, Row: 4})
	g.SetCell(Addr{Col: 1, Row: 4}, "x")

	g.ReplaceRows(peopleRows(2))
	if g.CanUndo() {
		t.Fatalf("expected history to be cleared")
	}
	if got, want := mustActive(t, g), (Addr{Col: 1, Row: 1}); got != want {
		t.Fatalf("active=%v, want %v", got, want)
	}
	if got, want := g.Windower().RowCount(), 2; got != want {
		t.Fatalf("windower rows=%d, want %d", got, want)
	}
}

func TestGrid_DeleteSelectedRows(t *testing.T) {
	g := newPeopleGrid(t, 6, Options{})
	g.MoveTo(Addr{Col: 1, Row: 1})
	g.ExtendTo(Addr{Col: 1, Row: 3})
	if !g.DeleteSelectedRows() {
		t.Fatalf("expected DeleteSelectedRows=true")
	}
	if got, want := g.RowCount(), 3; got != want {
		t.Fatalf("rows=%d, want %d", got, want)
	}
	if got, want := g.DisplayValue(Addr{Col: 1, Row: 1}), "first4"; got != want {
		t.Fatalf("(1,1)=%q, want %q", got, want)
	}
}

func TestGrid_SetRowHeightFuncKeepsActiveRowVisible(t *testing.T) {
	g := newPeopleGrid(t, 20, Options{})
	g.SetViewportHeight(5)
	g.MoveTo(Addr{Col: 0, Row: 4})

	var kinds []EventKind
	g.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })

	g.SetRowHeightFunc(func(int) int { return 2 })
	if got, want := g.Windower().Offset(), 5; got != want {
		t.Fatalf("offset=%d, want %d", got, want)
	}
	if len(kinds) != 1 || !kinds[0].Has(EventViewport) {
		t.Fatalf("events=%v, want one viewport event", kinds)
	}

	g.SetRowHeightFunc(nil)
	if got, want := g.Windower().TotalHeight(), 20; got != want {
		t.Fatalf("total height=%d, want %d", got, want)
	}
}

func TestGrid_ClearEmptyCellsRecordsNothing(t *testing.T) {
	g, err := New([]Record{{"active": false}, {"active": false}}, peopleColumns(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var kinds []EventKind
	g.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })
	g.SelectAll()
	kinds = nil

	if got := g.ClearCells(); got != 0 {
		t.Fatalf("cleared=%d, want 0", got)
	}
	if g.CanUndo() {
		t.Fatalf("expected no undo entry")
	}
	if len(kinds) != 0 {
		t.Fatalf("events=%v, want none", kinds)
	}
}

func TestGrid_WritingCurrentValueRecordsNothing(t *testing.T) {
	g := newPeopleGrid(t, 2, Options{})
	g.MoveTo(Addr{Col: 1, Row: 0})
	v := g.Version()

	if err := g.SetCell(Addr{Col: 1, Row: 0}, "first0"); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	g.Paste("first0")
	if err := g.SetCell(Addr{Col: 0, Row: 0}, true); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if g.CanUndo() {
		t.Fatalf("expected no undo entry")
	}
	if got := g.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}

	g.MoveTo(Addr{Col: 1, Row: 0})
	g.ExtendTo(Addr{Col: 2, Row: 0})
	if got, want := g.ClearCells(), 2; got != want {
		t.Fatalf("cleared=%d, want %d", got, want)
	}
	if got := g.ClearCells(); got != 0 {
		t.Fatalf("second clear=%d, want 0", got)
	}
	undos := 0
	for g.Undo() {
		undos++
	}
	if undos != 1 {
		t.Fatalf("undos=%d, want 1", undos)
	}
}
