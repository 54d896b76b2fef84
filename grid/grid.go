package grid

import "fmt"

// Options configures a Grid.
type Options struct {
	// HistoryLimit bounds the undo log. Default: 1000. Negative disables undo.
	HistoryLimit int

	// Row geometry and virtualization, forwarded to the Windower.
	RowHeight     int
	RowHeightFunc func(row int) int
	Overscan      int

	// TabPolicy decides Tab/Shift-Tab behavior at the grid corners.
	TabPolicy TabPolicy

	// NewRow builds records for inserted rows. Default: empty Record.
	NewRow func() Record

	// LockRows forbids row insertion and deletion; pastes are truncated at
	// the last row instead of growing the grid.
	LockRows bool

	// ReadOnly refuses every data mutation. Navigation and copy still work.
	ReadOnly bool
}

// Grid is one data-grid engine instance. It owns the row store, selection,
// undo history and windower, and must only be mutated through its methods so
// selection and viewport invalidation run.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	opt Options

	store *Store
	sel   *Selection
	hist  *History
	win   *Windower

	editing bool
	editAt  Addr

	version   uint64
	subs      []subscriber
	nextSubID int
}

// New constructs a grid over rows and cols. rows is copied; the records
// themselves are shared and must not be mutated afterwards.
func New(rows []Record, cols []Column, opt Options) (*Grid, error) {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	store, err := NewStore(rows, cols, opt.NewRow)
	if err != nil {
		return nil, err
	}
	g := &Grid{
		opt:   opt,
		store: store,
		sel:   NewSelection(store.ColumnCount(), store.RowCount(), opt.TabPolicy),
		hist:  NewHistory(opt.HistoryLimit),
		win: NewWindower(store.RowCount(), WindowOptions{
			RowHeight:     opt.RowHeight,
			RowHeightFunc: opt.RowHeightFunc,
			Overscan:      opt.Overscan,
		}),
	}
	return g, nil
}

func (g *Grid) Options() Options { return g.opt }

// Store exposes the row store for reads. Mutating it directly bypasses
// selection, viewport and history bookkeeping.
func (g *Grid) Store() *Store { return g.store }

func (g *Grid) Windower() *Windower { return g.win }

func (g *Grid) Version() uint64 { return g.version }

func (g *Grid) RowCount() int { return g.store.RowCount() }

func (g *Grid) ColumnCount() int { return g.store.ColumnCount() }

func (g *Grid) Column(i int) Column { return g.store.Column(i) }

// ColumnTitle returns the header label of column i.
func (g *Grid) ColumnTitle(i int) string {
	col := g.store.Column(i)
	if col == nil {
		return ""
	}
	return columnTitle(col)
}

func (g *Grid) ActiveCell() (Addr, bool) { return g.sel.ActiveCell() }

func (g *Grid) Selection() (Range, bool) { return g.sel.Range() }

func (g *Grid) State() SelectionState { return g.sel.State() }

// SelectionSnapshot returns the full selection state, including the moving
// corner of the range.
func (g *Grid) SelectionSnapshot() SelectionSnapshot { return g.sel.Snapshot() }

func (g *Grid) Visible() VisibleRange { return g.win.Visible() }

func (g *Grid) GetCell(a Addr) any { return g.store.GetCell(a) }

func (g *Grid) DisplayValue(a Addr) string { return g.store.DisplayValue(a) }

func (g *Grid) Editable(a Addr) bool {
	return !g.opt.ReadOnly && g.store.Editable(a)
}

// IsToggle reports whether the cell at a flips in place rather than opening
// an editor.
func (g *Grid) IsToggle(a Addr) bool {
	col := g.store.Column(a.Col)
	if col == nil {
		return false
	}
	_, ok := toggler(col)
	return ok
}

func (g *Grid) CanUndo() bool { return !g.opt.ReadOnly && g.hist.CanUndo() }

func (g *Grid) CanRedo() bool { return !g.opt.ReadOnly && g.hist.CanRedo() }

// Resolve turns a host reference into an address. Keys win over indices;
// indices are clamped like every other address.
func (g *Grid) Resolve(ref CellRef) (Addr, error) {
	col := ref.Col
	if ref.Key != "" {
		i, ok := g.store.ColumnIndex(ref.Key)
		if !ok {
			return Addr{}, fmt.Errorf("%w: %q", ErrUnknownColumn, ref.Key)
		}
		col = i
	}
	return Addr{Col: col, Row: ref.Row}, nil
}

// --- selection commands ---

// MoveTo makes a the active cell and collapses the range onto it. An open
// editor is cancelled.
func (g *Grid) MoveTo(a Addr) bool {
	kind := g.cancelEditKind()
	if g.sel.MoveTo(a) {
		kind |= EventSelection
	}
	kind |= g.follow(false)
	g.emit(kind, RowSpan{})
	return kind.Has(EventSelection)
}

// ExtendTo stretches the range from the active cell to a.
func (g *Grid) ExtendTo(a Addr) bool {
	kind := g.cancelEditKind()
	if g.sel.ExtendTo(a) {
		kind |= EventSelection
	}
	kind |= g.follow(true)
	g.emit(kind, RowSpan{})
	return kind.Has(EventSelection)
}

// Navigate moves one step in dir; see Selection.Navigate. escaped reports a
// Tab off the grid under TabBlur.
func (g *Grid) Navigate(dir Direction, extend bool) (changed, escaped bool) {
	kind := g.cancelEditKind()
	g.sel.SetPageRows(g.win.PageRows())
	changed, escaped = g.sel.Navigate(dir, extend)
	if changed {
		kind |= EventSelection
	}
	kind |= g.follow(extend && dir != DirTab && dir != DirShiftTab)
	g.emit(kind, RowSpan{})
	return changed, escaped
}

func (g *Grid) SelectAll() bool {
	kind := g.cancelEditKind()
	if g.sel.SelectAll() {
		kind |= EventSelection
	}
	g.emit(kind, RowSpan{})
	return kind.Has(EventSelection)
}

// SetActiveCell moves the active cell to ref.
func (g *Grid) SetActiveCell(ref CellRef) error {
	a, err := g.Resolve(ref)
	if err != nil {
		return err
	}
	g.MoveTo(a)
	return nil
}

// SetSelection replaces the selection range; nil clears it and keeps the
// active cell. Corners are normalized and clamped.
func (g *Grid) SetSelection(ref *RangeRef) error {
	var r *Range
	if ref != nil {
		lo, err := g.Resolve(ref.Min)
		if err != nil {
			return err
		}
		hi, err := g.Resolve(ref.Max)
		if err != nil {
			return err
		}
		rng := RangeBetween(lo, hi)
		r = &rng
	}

	kind := g.cancelEditKind()
	if g.sel.SetSelection(r) {
		kind |= EventSelection
	}
	kind |= g.follow(false)
	g.emit(kind, RowSpan{})
	return nil
}

// RestoreSelection reinstates a snapshot taken earlier (for example when a
// drag is cancelled).
func (g *Grid) RestoreSelection(snap SelectionSnapshot) bool {
	kind := EventKind(0)
	if g.sel.Restore(snap) {
		kind |= EventSelection
	}
	g.emit(kind, RowSpan{})
	return kind.Has(EventSelection)
}

// --- viewport commands ---

// Scroll sets the scroll offset. Repeated calls between reads of Visible
// only cost a store of the latest offset.
func (g *Grid) Scroll(offset int) bool {
	if !g.win.SetOffset(offset) {
		return false
	}
	g.emit(EventViewport, RowSpan{})
	return true
}

func (g *Grid) ScrollBy(delta int) bool { return g.Scroll(g.win.Offset() + delta) }

func (g *Grid) SetViewportHeight(h int) bool {
	if !g.win.SetViewportHeight(h) {
		return false
	}
	kind := EventViewport | g.follow(false)
	g.emit(kind, RowSpan{})
	return true
}

// SetRowHeightFunc switches the viewport to per-row heights; nil returns to
// the constant Options.RowHeight. The active row stays in view.
func (g *Grid) SetRowHeightFunc(fn func(row int) int) {
	g.opt.RowHeightFunc = fn
	g.win.SetRowHeightFunc(fn)
	g.emit(EventViewport|g.follow(false), RowSpan{})
}

// ScrollIntoView scrolls so row is fully visible.
func (g *Grid) ScrollIntoView(row int) bool {
	if !g.win.EnsureVisible(row) {
		return false
	}
	g.emit(EventViewport, RowSpan{})
	return true
}

// follow keeps the active row (or the moving corner while extending) in
// view.
func (g *Grid) follow(focus bool) EventKind {
	a, ok := g.sel.ActiveCell()
	if !ok {
		return 0
	}
	row := a.Row
	if focus {
		row = g.sel.Focus().Row
	}
	if g.win.EnsureVisible(row) {
		return EventViewport
	}
	return 0
}

// --- data commands ---

// SetCell writes v into the cell at a as one undoable edit. Writing the
// value the cell already holds is a no-op.
func (g *Grid) SetCell(a Addr, v any) error {
	if g.opt.ReadOnly {
		return ErrNotEditable
	}
	before := g.sel.Snapshot()
	_, change, err := g.store.SetCell(a, v)
	if err != nil {
		return err
	}
	g.commit(change, before, 0)
	return nil
}

// ClearCells writes each column's empty value into the editable cells of
// the selection (or the active cell when there is no range). Read-only
// cells and cells that are already empty are left alone. It returns the
// number of cells cleared; zero records nothing in the history.
func (g *Grid) ClearCells() int {
	r, ok := g.targetRange()
	if !ok || g.opt.ReadOnly {
		return 0
	}
	before := g.sel.Snapshot()
	cleared := 0
	change, _ := g.store.SetCellsInRange(r, func(a Addr, cur any) (any, bool) {
		v := emptyValue(g.store.Column(a.Col))
		if sameValue(cur, v) {
			return nil, false
		}
		cleared++
		return v, true
	})
	g.commit(change, before, g.cancelEditKind())
	return cleared
}

// Toggle flips the active cell when its column toggles in place.
func (g *Grid) Toggle() bool {
	a, ok := g.sel.ActiveCell()
	if !ok || !g.Editable(a) {
		return false
	}
	t, ok := toggler(g.store.Column(a.Col))
	if !ok {
		return false
	}
	return g.SetCell(a, t.Toggle(g.store.GetCell(a))) == nil
}

// Copy serializes the selection (or the active cell) to clipboard text.
func (g *Grid) Copy() string {
	r, ok := g.targetRange()
	if !ok {
		return ""
	}
	return Serialize(g.store, r)
}

// Cut copies the selection and then clears its editable cells.
func (g *Grid) Cut() string {
	text := g.Copy()
	if text != "" {
		g.ClearCells()
	}
	return text
}

// PasteResult reports what a paste did.
type PasteResult struct {
	// Block is the rectangle written, selected after the paste.
	Block Range
	// Applied is the number of cells written.
	Applied int
	// Skipped lists cells left untouched: parse failures and read-only
	// columns.
	Skipped []SkippedCell
	// RowsInserted is how many rows were appended to fit the block.
	RowsInserted int
	// Truncated is true when part of the clipboard did not fit (extra columns,
	// or extra rows under LockRows).
	Truncated bool
}

// Paste decodes clipboard text at the top-left of the selection and writes
// it as one undoable change.
//
// Rows past the end grow the grid (unless LockRows); columns past the last
// one are dropped. A single value pasted over a larger selection fills it.
func (g *Grid) Paste(text string) PasteResult {
	var res PasteResult
	target, ok := g.targetRange()
	if !ok || g.opt.ReadOnly {
		return res
	}

	matrix := splitClipboard(text)
	if len(matrix) == 0 {
		return res
	}
	if len(matrix) == 1 && len(matrix[0]) == 1 && !target.IsCell() {
		matrix = fillMatrix(matrix[0][0], target.Width(), target.Height())
	}
	for _, row := range matrix {
		if target.Min.Col+len(row) > g.store.ColumnCount() {
			res.Truncated = true
		}
	}

	dec := decodeMatrix(g.store, matrix, target.Min)
	if dec.Empty {
		return res
	}

	before := g.sel.Snapshot()
	cb := newChangeBuilder()
	block := dec.Block
	updates := dec.Updates
	res.Skipped = dec.Skipped

	if dec.GrowRows > 0 {
		if g.opt.LockRows {
			res.Truncated = true
			block.Max.Row = g.store.RowCount() - 1
			updates = updatesWithin(updates, block)
			res.Skipped = skippedWithin(res.Skipped, block)
		} else {
			cb.merge(g.store.InsertRows(g.store.RowCount(), dec.GrowRows))
			res.RowsInserted = dec.GrowRows
		}
	}

	values := make(map[Addr]any, len(updates))
	for _, u := range updates {
		values[u.Addr] = u.Value
	}
	change, _ := g.store.SetCellsInRange(block, func(a Addr, _ any) (any, bool) {
		v, ok := values[a]
		return v, ok
	})
	cb.merge(change)
	res.Applied = len(values)
	res.Block = block

	kind := g.cancelEditKind()
	kind |= g.syncBounds()
	if g.sel.MoveTo(block.Min) {
		kind |= EventSelection
	}
	if !block.IsCell() && g.sel.ExtendTo(block.Max) {
		kind |= EventSelection
	}
	g.commit(cb.build(), before, kind)
	return res
}

func updatesWithin(in []CellUpdate, r Range) []CellUpdate {
	out := in[:0:0]
	for _, u := range in {
		if r.Contains(u.Addr) {
			out = append(out, u)
		}
	}
	return out
}

func skippedWithin(in []SkippedCell, r Range) []SkippedCell {
	out := in[:0:0]
	for _, s := range in {
		if r.Contains(s.Addr) {
			out = append(out, s)
		}
	}
	return out
}

// targetRange is the selection range, or the active cell when there is none.
func (g *Grid) targetRange() (Range, bool) {
	if r, ok := g.sel.Range(); ok {
		return r, true
	}
	a, ok := g.sel.ActiveCell()
	if !ok {
		return Range{}, false
	}
	return CellRange(a), true
}

// --- structural commands ---

// InsertRows inserts count new rows before row at.
func (g *Grid) InsertRows(at, count int) bool {
	if g.opt.ReadOnly || g.opt.LockRows {
		return false
	}
	before := g.sel.Snapshot()
	change := g.store.InsertRows(at, count)
	return g.commitStructural(change, before)
}

// DeleteRows removes the inclusive row span [first, last].
func (g *Grid) DeleteRows(first, last int) bool {
	if g.opt.ReadOnly || g.opt.LockRows {
		return false
	}
	before := g.sel.Snapshot()
	change := g.store.DeleteRows(first, last)
	return g.commitStructural(change, before)
}

// DeleteSelectedRows removes every row the selection touches.
func (g *Grid) DeleteSelectedRows() bool {
	r, ok := g.targetRange()
	if !ok {
		return false
	}
	return g.DeleteRows(r.Min.Row, r.Max.Row)
}

// DuplicateRows inserts copies of rows [first, last] right below them and
// moves the active cell onto the first copy.
func (g *Grid) DuplicateRows(first, last int) bool {
	if g.opt.ReadOnly || g.opt.LockRows || g.store.RowCount() == 0 {
		return false
	}
	if first > last {
		first, last = last, first
	}
	first = clampInt(first, 0, g.store.RowCount()-1)
	last = clampInt(last, 0, g.store.RowCount()-1)

	recs := make([]Record, 0, last-first+1)
	for row := first; row <= last; row++ {
		recs = append(recs, g.store.Row(row).Clone())
	}

	before := g.sel.Snapshot()
	change := g.store.InsertRecords(last+1, recs)
	if change.IsEmpty() {
		return false
	}
	g.syncBounds()
	kind := g.cancelEditKind() | EventData
	a, _ := g.sel.ActiveCell()
	if g.sel.MoveTo(Addr{Col: a.Col, Row: last + 1}) {
		kind |= EventSelection
	}
	kind |= g.follow(false)
	g.commit(change, before, kind)
	return true
}

// ReplaceRows swaps in a new row sequence pushed from outside (for example a
// reload). The undo history no longer applies and is cleared.
func (g *Grid) ReplaceRows(rows []Record) {
	change := g.store.ReplaceRows(rows)
	if change.IsEmpty() {
		return
	}
	g.hist.Clear()
	kind := g.cancelEditKind() | EventData
	kind |= g.syncBounds()
	g.win.InvalidateHeights(0)
	g.emit(kind, change.Rows)
}

func (g *Grid) commitStructural(change Change, before SelectionSnapshot) bool {
	if change.IsEmpty() {
		return false
	}
	kind := g.cancelEditKind()
	kind |= g.syncBounds()
	g.commit(change, before, kind)
	return true
}

// syncBounds propagates the store size to the selection and windower.
func (g *Grid) syncBounds() EventKind {
	kind := EventKind(0)
	if g.sel.SetBounds(g.store.ColumnCount(), g.store.RowCount()) {
		kind |= EventSelection
	}
	if g.win.SetRowCount(g.store.RowCount()) {
		kind |= EventViewport
	}
	return kind
}

// commit records a data change in the history and notifies subscribers.
func (g *Grid) commit(change Change, before SelectionSnapshot, kind EventKind) {
	if change.IsEmpty() {
		g.emit(kind, RowSpan{})
		return
	}
	if change.RowDelta() != 0 || g.win.variable() {
		g.win.InvalidateHeights(change.Rows.First)
	}
	g.hist.Push(Entry{
		Change:          change,
		SelectionBefore: before,
		SelectionAfter:  g.sel.Snapshot(),
	})
	g.emit(kind|EventData, change.Rows)
}

// --- history ---

// Undo reverts the most recent change and restores the selection it was made
// from.
func (g *Grid) Undo() bool {
	if g.opt.ReadOnly {
		return false
	}
	e, ok := g.hist.Undo()
	if !ok {
		return false
	}
	inv := e.Change.Invert()
	g.store.Apply(inv)
	g.replayed(inv, e.SelectionBefore)
	return true
}

// Redo re-applies the most recently undone change.
func (g *Grid) Redo() bool {
	if g.opt.ReadOnly {
		return false
	}
	e, ok := g.hist.Redo()
	if !ok {
		return false
	}
	g.store.Apply(e.Change)
	g.replayed(e.Change, e.SelectionAfter)
	return true
}

func (g *Grid) replayed(c Change, sel SelectionSnapshot) {
	kind := g.cancelEditKind() | EventData
	kind |= g.syncBounds()
	g.win.InvalidateHeights(c.Rows.First)
	if g.sel.Restore(sel) {
		kind |= EventSelection
	}
	kind |= g.follow(false)
	g.emit(kind, c.Rows)
}
