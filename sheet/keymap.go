package sheet

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the sheet key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	Tab, ShiftTab                             key.Binding
	Home, End                                 key.Binding
	GridHome, GridEnd                         key.Binding
	ShiftGridHome, ShiftGridEnd               key.Binding
	PageUp, PageDown                          key.Binding
	SelectAll                                 key.Binding

	Enter, Escape key.Binding
	Clear         key.Binding
	Toggle        key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	InsertRow, DuplicateRow, DeleteRow key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cell")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "row start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "row end")),

		// Not every terminal reports ctrl+home; alt+< / alt+> mirror less(1).
		GridHome:      key.NewBinding(key.WithKeys("ctrl+home", "alt+<"), key.WithHelp("ctrl+home", "first cell")),
		GridEnd:       key.NewBinding(key.WithKeys("ctrl+end", "alt+>"), key.WithHelp("ctrl+end", "last cell")),
		ShiftGridHome: key.NewBinding(key.WithKeys("ctrl+shift+home"), key.WithHelp("ctrl+shift+home", "select to first cell")),
		ShiftGridEnd:  key.NewBinding(key.WithKeys("ctrl+shift+end"), key.WithHelp("ctrl+shift+end", "select to last cell")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),

		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit / confirm")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Clear:  key.NewBinding(key.WithKeys("delete", "backspace", "ctrl+h"), key.WithHelp("del", "clear cells")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		InsertRow:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "insert row below")),
		DuplicateRow: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "duplicate rows")),
		DeleteRow:    key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "delete rows")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Escape, k.Copy, k.Paste, k.Undo}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Tab, k.ShiftTab},
		{k.Home, k.End, k.GridHome, k.GridEnd, k.PageUp, k.PageDown},
		{k.ShiftUp, k.ShiftDown, k.ShiftLeft, k.ShiftRight, k.SelectAll},
		{k.Enter, k.Escape, k.Clear, k.Toggle},
		{k.Copy, k.Cut, k.Paste, k.Undo, k.Redo},
		{k.InsertRow, k.DuplicateRow, k.DeleteRow},
	}
}

func (k KeyMap) isZero() bool { return len(k.Up.Keys()) == 0 && len(k.Enter.Keys()) == 0 }
