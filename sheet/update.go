package sheet

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sheetgrid/grid"
)

func (m Model) exec(c Command, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch c.Kind {
	case CmdNavigate:
		return m.navigate(c.Dir, c.Extend)
	case CmdSelectAll:
		m.g.SelectAll()
	case CmdCollapse:
		if a, ok := m.g.ActiveCell(); ok {
			m.g.MoveTo(a)
		}

	case CmdBeginEdit:
		if a, ok := m.g.ActiveCell(); ok && m.g.IsToggle(a) {
			m.toggle()
			return m, nil
		}
		return m.beginEdit("", false)
	case CmdTypeEdit:
		return m.beginEdit(c.Text, true)
	case CmdCommitEdit:
		if err := m.g.CommitEdit(m.input.Value()); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.closeEditor()
		if c.Move {
			return m.navigate(c.Dir, false)
		}
	case CmdCancelEdit:
		m.g.CancelEdit()
		m.closeEditor()
	case CmdEditInput:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case CmdClear:
		if m.refuseReadOnly() {
			return m, nil
		}
		m.g.ClearCells()
	case CmdToggle:
		a, ok := m.g.ActiveCell()
		if ok && !m.g.IsToggle(a) {
			return m.beginEdit(" ", true)
		}
		m.toggle()

	case CmdCopy:
		m.copySelection()
	case CmdCut:
		if m.cfg.Options.ReadOnly {
			m.copySelection()
			return m, nil
		}
		m.cutSelection()
	case CmdPaste:
		m.pasteClipboard()
	case CmdPasteText:
		m.paste(c.Text)

	case CmdUndo:
		if !m.refuseReadOnly() {
			m.g.Undo()
		}
	case CmdRedo:
		if !m.refuseReadOnly() {
			m.g.Redo()
		}

	case CmdInsertRow:
		if a, ok := m.g.ActiveCell(); ok && m.g.InsertRows(a.Row+1, 1) {
			m.g.MoveTo(grid.Addr{Col: a.Col, Row: a.Row + 1})
		} else if !ok && m.g.InsertRows(0, 1) {
			m.g.MoveTo(grid.Addr{})
		}
	case CmdDuplicateRow:
		if r, ok := m.targetRows(); ok {
			m.g.DuplicateRows(r.Min.Row, r.Max.Row)
		}
	case CmdDeleteRow:
		m.g.DeleteSelectedRows()
	}
	return m, nil
}

func (m Model) navigate(dir grid.Direction, extend bool) (Model, tea.Cmd) {
	_, escaped := m.g.Navigate(dir, extend)
	if !escaped {
		return m, nil
	}
	m = m.Blur()
	backward := dir == grid.DirShiftTab
	return m, func() tea.Msg { return TabOutMsg{Backward: backward} }
}

// beginEdit opens the cell editor on the active cell. With replace the
// editor starts from text instead of the cell's current value.
func (m Model) beginEdit(text string, replace bool) (Model, tea.Cmd) {
	cur, err := m.g.BeginEdit()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if !replace {
		text = cur
	}
	a, _ := m.g.Editing()
	m.input.Width = m.cfg.columnWidth(a.Col) - 1
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) closeEditor() {
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) toggle() {
	if m.refuseReadOnly() {
		return
	}
	a, _ := m.g.ActiveCell()
	if !m.g.Editable(a) {
		m.status = fmt.Sprintf("%s: %v", m.g.ColumnTitle(a.Col), grid.ErrNotEditable)
		return
	}
	m.g.Toggle()
}

func (m *Model) refuseReadOnly() bool {
	if !m.cfg.Options.ReadOnly {
		return false
	}
	m.status = "read-only"
	return true
}

func (m Model) targetRows() (grid.Range, bool) {
	if r, ok := m.g.Selection(); ok {
		return r, true
	}
	a, ok := m.g.ActiveCell()
	return grid.CellRange(a), ok
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.g.Copy()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.status = "copy: " + err.Error()
	}
}

// cutSelection clears the cells only once the clipboard holds their text.
func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.g.Copy()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.status = "cut: " + err.Error()
		return
	}
	m.g.ClearCells()
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.status = "paste: " + err.Error()
		return
	}
	m.paste(s)
}

func (m *Model) paste(text string) {
	if text == "" || m.refuseReadOnly() {
		return
	}
	res := m.g.Paste(text)
	switch {
	case len(res.Skipped) > 0:
		m.status = fmt.Sprintf("pasted %d cells, skipped %d: %v", res.Applied, len(res.Skipped), res.Skipped[0].Err)
	case res.Truncated:
		m.status = fmt.Sprintf("pasted %d cells, clipboard truncated", res.Applied)
	}
}
