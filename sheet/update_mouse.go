package sheet

import tea "github.com/charmbracelet/bubbletea"

const wheelStep = 3

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheel(msg) {
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			m.g.ScrollBy(-wheelStep)
		case tea.MouseButtonWheelDown:
			m.g.ScrollBy(wheelStep)
		case tea.MouseButtonWheelLeft:
			m.xOffset = maxInt(0, m.xOffset-1)
		case tea.MouseButtonWheelRight:
			if m.xOffset < m.g.ColumnCount()-1 {
				m.xOffset++
			}
		}
		return m, nil
	}

	if !m.focused {
		return m, nil
	}

	// Only left button interactions change the selection.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		a, ok := m.ScreenToCell(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if m.editing() {
			if err := m.g.CommitEdit(m.input.Value()); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.closeEditor()
		}
		if msg.Shift {
			m.dragStart = m.g.SelectionSnapshot()
			m.g.ExtendTo(a)
		} else {
			m.g.MoveTo(a)
			m.dragStart = m.g.SelectionSnapshot()
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		if a, ok := m.ScreenToCell(msg.X, msg.Y); ok {
			m.g.ExtendTo(a)
		}

	case tea.MouseActionRelease:
		if !m.mouseDragging {
			return m, nil
		}
		m.mouseDragging = false
		// Releasing outside any cell cancels the drag.
		if _, ok := m.ScreenToCell(msg.X, msg.Y); !ok {
			m.g.RestoreSelection(m.dragStart)
		}
	}
	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
