package sheet

import "github.com/iw2rmb/sheetgrid/grid"

// Config configures the sheet Model.
type Config struct {
	// Initial data and column order.
	Rows    []grid.Record
	Columns []grid.Column

	// Forwarded to grid.New.
	Options grid.Options

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap

	// Rendering options.
	Style          Style
	ShowRowNumbers bool
	// ColumnWidth returns the width in cells of column i. Default: 12 for
	// every column.
	ColumnWidth func(col int) int

	// Clipboard backs copy, cut and paste. Nil disables them; bracketed
	// paste from the terminal still works.
	Clipboard Clipboard

	// OnChange is called after every committed grid change, including
	// changes made by the host through Model.Grid.
	OnChange func(ChangeEvent)

	// ReadOnly disables every mutating command. Navigation and copy still
	// work.
	ReadOnly bool
}

const defaultColumnWidth = 12

func (c Config) columnWidth(col int) int {
	if c.ColumnWidth == nil {
		return defaultColumnWidth
	}
	if w := c.ColumnWidth(col); w > 0 {
		return w
	}
	return 1
}
