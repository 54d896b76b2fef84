package sheet

import (
	"strconv"

	"github.com/iw2rmb/sheetgrid/grid"
)

// colSpan is one rendered column: its index, screen x and width in cells.
type colSpan struct {
	col   int
	x     int
	width int
}

const separatorWidth = 1

func (m Model) gutterWidth() int {
	if !m.cfg.ShowRowNumbers {
		return 0
	}
	return len(strconv.Itoa(maxInt(m.g.RowCount(), 1))) + separatorWidth
}

// columnSpans lists the columns rendered from xOffset on. The last one may be
// narrower than its configured width. A zero width means unlimited.
func (m Model) columnSpans() []colSpan {
	x := m.gutterWidth()
	var out []colSpan
	for col := m.xOffset; col < m.g.ColumnCount(); col++ {
		if m.width > 0 && x >= m.width {
			break
		}
		w := m.cfg.columnWidth(col)
		if m.width > 0 && x+w > m.width {
			w = m.width - x
		}
		out = append(out, colSpan{col: col, x: x, width: w})
		x += w + separatorWidth
	}
	return out
}

// followActiveColumn scrolls horizontally so the active column is fully
// visible when it fits at all.
func (m *Model) followActiveColumn() {
	if m.xOffset >= m.g.ColumnCount() {
		m.xOffset = maxInt(0, m.g.ColumnCount()-1)
	}
	a, ok := m.g.ActiveCell()
	if !ok {
		return
	}
	if a.Col < m.xOffset {
		m.xOffset = a.Col
		return
	}
	if m.width <= 0 {
		return
	}
	avail := m.width - m.gutterWidth()
	for m.xOffset < a.Col {
		used := 0
		for col := m.xOffset; col <= a.Col; col++ {
			used += m.cfg.columnWidth(col) + separatorWidth
		}
		if used-separatorWidth <= avail {
			return
		}
		m.xOffset++
	}
}

// ScreenToCell maps component-local screen coordinates to a cell. ok is false
// for the header, the status row, the gutter, separators and empty space.
func (m Model) ScreenToCell(x, y int) (grid.Addr, bool) {
	body := m.bodyHeight()
	if y < 1 || y > body || x < m.gutterWidth() {
		return grid.Addr{}, false
	}
	if m.width > 0 && x >= m.width {
		return grid.Addr{}, false
	}
	win := m.g.Windower()
	row, ok := win.RowAt(win.Offset() + y - 1)
	if !ok || win.RowTop(row+1) <= win.Offset()+y-1 {
		return grid.Addr{}, false
	}
	for _, s := range m.columnSpans() {
		if x >= s.x && x < s.x+s.width {
			return grid.Addr{Col: s.col, Row: row}, true
		}
	}
	return grid.Addr{}, false
}

// ViewportState is a stable host-facing snapshot of the sheet camera.
type ViewportState struct {
	// Offset is the vertical scroll offset in terminal rows.
	Offset int
	// TopRow is the data row rendered at the first body line.
	TopRow int
	// BodyRows is the number of terminal rows available for data.
	BodyRows int
	// FirstColumn is the first rendered column.
	FirstColumn int
	// Visible is the row window the renderer paints, overscan included.
	Visible grid.VisibleRange
}

func (m Model) ViewportState() ViewportState {
	win := m.g.Windower()
	top, _ := win.RowAt(win.Offset())
	return ViewportState{
		Offset:      win.Offset(),
		TopRow:      top,
		BodyRows:    m.bodyHeight(),
		FirstColumn: m.xOffset,
		Visible:     m.g.Visible(),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
