package grid

import (
	"fmt"

	"github.com/iw2rmb/sheetgrid/internal/tsv"
)

// CellUpdate is one decoded paste value bound for Addr.
type CellUpdate struct {
	Addr  Addr
	Value any
}

// SkippedCell is a paste target left untouched, with the reason.
type SkippedCell struct {
	Addr Addr
	Err  error
}

// Decoded is the result of decoding clipboard text against a store.
type Decoded struct {
	// Updates holds parsed values in row-major order. Rows at or past the
	// store's RowCount are included; the caller grows the grid for them.
	Updates []CellUpdate
	// Skipped lists cells whose text failed to parse or whose column is not
	// editable.
	Skipped []SkippedCell
	// Block is the pasted rectangle after truncation to existing columns.
	Block Range
	// GrowRows is how many rows must be appended to hold the whole block.
	GrowRows int
	// Empty is true when the text held nothing to paste.
	Empty bool
}

// Serialize formats the cells of r as clipboard text: rows top to bottom,
// columns left to right, each value through its column's Format.
func Serialize(s *Store, r Range) string {
	if s.RowCount() == 0 || s.ColumnCount() == 0 {
		return ""
	}
	r = ClampRange(r, s.ColumnCount(), s.RowCount())

	rows := make([][]string, 0, r.Height())
	for row := r.Min.Row; row <= r.Max.Row; row++ {
		rec := s.Row(row)
		fields := make([]string, 0, r.Width())
		for c := r.Min.Col; c <= r.Max.Col; c++ {
			col := s.Column(c)
			fields = append(fields, col.Format(col.Read(rec)))
		}
		rows = append(rows, fields)
	}
	return tsv.Join(rows)
}

// Decode splits clipboard text and parses every field with the column it
// lands in, starting at topLeft.
//
// Fields past the last column are dropped. Rows past the last row are kept
// and reported through GrowRows. A field that fails to parse only skips its
// own cell.
func Decode(s *Store, text string, topLeft Addr) Decoded {
	return decodeMatrix(s, tsv.Split(text), topLeft)
}

func decodeMatrix(s *Store, matrix [][]string, topLeft Addr) Decoded {
	out := Decoded{Empty: true}
	cols := s.ColumnCount()
	if len(matrix) == 0 || cols == 0 || topLeft.Col < 0 || topLeft.Col >= cols || topLeft.Row < 0 {
		return out
	}

	width := 0
	for _, row := range matrix {
		width = maxInt(width, len(row))
	}
	width = minInt(width, cols-topLeft.Col)
	if width <= 0 {
		return out
	}

	out.Empty = false
	out.Block = Range{
		Min: topLeft,
		Max: Addr{Col: topLeft.Col + width - 1, Row: topLeft.Row + len(matrix) - 1},
	}
	out.GrowRows = maxInt(0, out.Block.Max.Row-(s.RowCount()-1))

	for dy, row := range matrix {
		for dx := 0; dx < width; dx++ {
			a := Addr{Col: topLeft.Col + dx, Row: topLeft.Row + dy}
			col := s.Column(a.Col)
			if !col.Editable() {
				out.Skipped = append(out.Skipped, SkippedCell{Addr: a, Err: ErrNotEditable})
				continue
			}
			text := ""
			if dx < len(row) {
				text = row[dx]
			}
			v, err := col.Parse(text)
			if err != nil {
				out.Skipped = append(out.Skipped, SkippedCell{
					Addr: a,
					Err:  fmt.Errorf("column %q row %d: %w", col.Key(), a.Row, err),
				})
				continue
			}
			out.Updates = append(out.Updates, CellUpdate{Addr: a, Value: v})
		}
	}
	return out
}

func splitClipboard(text string) [][]string { return tsv.Split(text) }

// fillMatrix repeats a single value over a w x h block.
func fillMatrix(value string, w, h int) [][]string {
	out := make([][]string, h)
	for i := range out {
		row := make([]string, w)
		for j := range row {
			row[j] = value
		}
		out[i] = row
	}
	return out
}
