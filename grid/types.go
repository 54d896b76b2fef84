package grid

// Addr points at one cell by column and row index.
type Addr struct {
	Col int
	Row int
}

// Range is an inclusive cell rectangle: [Min.Col, Max.Col] x [Min.Row, Max.Row].
type Range struct {
	Min Addr
	Max Addr
}

// RowSpan is an inclusive row interval. An empty span has Last < First.
type RowSpan struct {
	First int
	Last  int
}

func (s RowSpan) Empty() bool { return s.Last < s.First }

// CellRef addresses a cell for host-facing calls. When Key is set it names the
// column and Col is ignored.
type CellRef struct {
	Col int
	Key string
	Row int
}

// RangeRef is a host-facing rectangle whose corners may use column keys.
type RangeRef struct {
	Min CellRef
	Max CellRef
}

func CompareColumns(a, b Addr) int { return compareInt(a.Col, b.Col) }

func CompareRows(a, b Addr) int { return compareInt(a.Row, b.Row) }

func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// CellRange returns the single-cell range at a.
func CellRange(a Addr) Range { return Range{Min: a, Max: a} }

func NormalizeRange(r Range) Range {
	if r.Min.Col > r.Max.Col {
		r.Min.Col, r.Max.Col = r.Max.Col, r.Min.Col
	}
	if r.Min.Row > r.Max.Row {
		r.Min.Row, r.Max.Row = r.Max.Row, r.Min.Row
	}
	return r
}

// RangeBetween returns the normalized rectangle spanned by two corners.
func RangeBetween(a, b Addr) Range { return NormalizeRange(Range{Min: a, Max: b}) }

func (r Range) Contains(a Addr) bool {
	return a.Col >= r.Min.Col && a.Col <= r.Max.Col &&
		a.Row >= r.Min.Row && a.Row <= r.Max.Row
}

func (r Range) IntersectsRow(row int) bool {
	return row >= r.Min.Row && row <= r.Max.Row
}

func (r Range) Width() int { return r.Max.Col - r.Min.Col + 1 }

func (r Range) Height() int { return r.Max.Row - r.Min.Row + 1 }

func (r Range) IsCell() bool { return r.Min == r.Max }

// Rows returns the row span covered by r.
func (r Range) Rows() RowSpan { return RowSpan{First: r.Min.Row, Last: r.Max.Row} }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampAddr clamps a into a grid of cols x rows cells.
//
// For an empty grid the zero Addr is returned; callers must check bounds
// before using it.
func ClampAddr(a Addr, cols, rows int) Addr {
	return Addr{
		Col: clampInt(a.Col, 0, cols-1),
		Row: clampInt(a.Row, 0, rows-1),
	}
}

func ClampRange(r Range, cols, rows int) Range {
	return NormalizeRange(Range{
		Min: ClampAddr(r.Min, cols, rows),
		Max: ClampAddr(r.Max, cols, rows),
	})
}

func inBounds(a Addr, cols, rows int) bool {
	return a.Col >= 0 && a.Col < cols && a.Row >= 0 && a.Row < rows
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
