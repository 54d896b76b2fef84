package sheet

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/sheetgrid/grid"
	"github.com/iw2rmb/sheetgrid/internal/grapheme"
)

// View renders the header, the visible rows and the status line.
func (m Model) View() string {
	if m.height <= 0 {
		return ""
	}
	spans := m.columnSpans()
	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderHeader(spans))
	lines = append(lines, m.renderBody(spans)...)
	lines = append(lines, m.renderStatus())
	return strings.Join(lines, "\n")
}

func (m Model) renderHeader(spans []colSpan) string {
	var sb strings.Builder
	if gw := m.gutterWidth(); gw > 0 {
		sb.WriteString(strings.Repeat(" ", gw))
	}
	for i, s := range spans {
		if i > 0 {
			sb.WriteString(m.cfg.Style.Separator.Render(" "))
		}
		sb.WriteString(m.cfg.Style.Header.Render(grapheme.Fit(m.g.ColumnTitle(s.col), s.width)))
	}
	return sb.String()
}

// renderBody paints only the rows of the visible window, each at its offset
// from the scroll position. Rows taller than one line get blank filler lines.
func (m Model) renderBody(spans []colSpan) []string {
	body := m.bodyHeight()
	if body == 0 {
		return nil
	}
	lines := make([]string, body)
	blank := m.blankLine(spans)
	for i := range lines {
		lines[i] = blank
	}

	win := m.g.Windower()
	vis := m.g.Visible()
	if vis.Empty {
		return lines
	}
	off := win.Offset()
	for row := vis.First; row <= vis.Last; row++ {
		top := win.RowTop(row) - off
		h := win.RowHeight(row)
		if h == 0 || top >= body || top+h <= 0 {
			continue
		}
		if top >= 0 {
			lines[top] = m.renderRow(row, spans)
		}
	}
	return lines
}

func (m Model) blankLine(spans []colSpan) string {
	w := m.gutterWidth()
	for _, s := range spans {
		w = s.x + s.width
	}
	return strings.Repeat(" ", w)
}

func (m Model) renderRow(row int, spans []colSpan) string {
	active, hasActive := m.g.ActiveCell()
	sel, hasSel := m.g.Selection()
	editAt, editing := m.g.Editing()

	var sb strings.Builder
	if gw := m.gutterWidth(); gw > 0 {
		st := m.cfg.Style.RowNumber
		if hasActive && active.Row == row {
			st = m.cfg.Style.RowNumberActive
		}
		sb.WriteString(st.Render(fmt.Sprintf("%*d", gw-separatorWidth, row+1)))
		sb.WriteString(" ")
	}

	for i, s := range spans {
		if i > 0 {
			sb.WriteString(m.cfg.Style.Separator.Render(" "))
		}
		a := grid.Addr{Col: s.col, Row: row}
		if editing && editAt == a {
			sb.WriteString(m.cfg.Style.Editor.Render(padANSI(m.input.View(), s.width)))
			continue
		}

		st := m.cfg.Style.Cell
		if !m.g.Editable(a) {
			st = m.cfg.Style.ReadOnly
		}
		if hasSel && !sel.IsCell() && sel.Contains(a) {
			st = m.cfg.Style.Selection
		}
		if m.focused && hasActive && active == a {
			st = m.cfg.Style.Active
		}
		sb.WriteString(st.Render(m.cellText(a, s.width)))
	}
	return sb.String()
}

// cellText formats one cell to exactly width cells. Checkboxes render as a
// box, numbers align right.
func (m Model) cellText(a grid.Addr, width int) string {
	if m.g.IsToggle(a) {
		box := "[ ]"
		if b, _ := m.g.GetCell(a).(bool); b {
			box = "[x]"
		}
		return grapheme.Fit(box, width)
	}
	text := m.g.DisplayValue(a)
	if kc, ok := m.g.Column(a.Col).(*grid.KeyCol); ok {
		switch kc.Type().(type) {
		case grid.IntCell, grid.FloatCell:
			return grapheme.FitRight(text, width)
		}
	}
	return grapheme.Fit(text, width)
}

func (m Model) renderStatus() string {
	text := m.status
	if text == "" {
		text = m.defaultStatus()
	}
	if m.width > 0 {
		text = grapheme.Fit(text, m.width)
	}
	return m.cfg.Style.Status.Render(text)
}

func (m Model) defaultStatus() string {
	a, ok := m.g.ActiveCell()
	if !ok {
		return "no rows"
	}
	pos := fmt.Sprintf("%s %d", m.g.ColumnTitle(a.Col), a.Row+1)
	if r, ok := m.g.Selection(); ok && !r.IsCell() {
		pos += fmt.Sprintf(" (%dx%d)", r.Width(), r.Height())
	}
	if _, editing := m.g.Editing(); editing {
		pos += " editing"
	}
	return pos
}

// padANSI pads or cuts styled text to width cells.
func padANSI(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-w)
}
