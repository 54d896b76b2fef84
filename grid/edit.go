package grid

import "fmt"

// Editing returns the cell with an open editor, if any.
func (g *Grid) Editing() (Addr, bool) { return g.editAt, g.editing }

// BeginEdit opens an editor on the active cell and returns its current text.
//
// Read-only cells are refused with ErrNotEditable. Toggle cells can be edited
// as text too; hosts usually call Toggle for them instead.
func (g *Grid) BeginEdit() (string, error) {
	a, ok := g.sel.ActiveCell()
	if !ok {
		return "", ErrOutOfBounds
	}
	if !g.Editable(a) {
		return "", fmt.Errorf("%w: column %q", ErrNotEditable, g.store.Column(a.Col).Key())
	}
	if g.editing && g.editAt == a {
		return g.store.DisplayValue(a), nil
	}
	g.editing = true
	g.editAt = a
	g.emit(EventEdit, RowSpan{})
	return g.store.DisplayValue(a), nil
}

// CommitEdit parses text with the edited column and writes it as one undoable
// change. On a parse error the editor stays open and nothing is written.
func (g *Grid) CommitEdit(text string) error {
	if !g.editing {
		return ErrNotEditing
	}
	a := g.editAt
	col := g.store.Column(a.Col)
	if col == nil {
		g.CancelEdit()
		return ErrOutOfBounds
	}
	v, err := col.Parse(text)
	if err != nil {
		return fmt.Errorf("column %q row %d: %w", col.Key(), a.Row, err)
	}

	before := g.sel.Snapshot()
	_, change, err := g.store.SetCell(a, v)
	if err != nil {
		g.CancelEdit()
		return err
	}
	g.editing = false
	g.editAt = Addr{}
	g.commit(change, before, EventEdit)
	return nil
}

// CancelEdit closes the editor without writing. It reports whether an editor
// was open.
func (g *Grid) CancelEdit() bool {
	kind := g.cancelEditKind()
	g.emit(kind, RowSpan{})
	return kind != 0
}

// cancelEditKind closes an open editor without notifying.
func (g *Grid) cancelEditKind() EventKind {
	if !g.editing {
		return 0
	}
	g.editing = false
	g.editAt = Addr{}
	return EventEdit
}
