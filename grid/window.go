package grid

import "sort"

// VisibleRange is the inclusive span of rows a rendering layer should paint.
type VisibleRange struct {
	First int
	Last  int
	Empty bool
}

// Len returns the number of rows in the range.
func (v VisibleRange) Len() int {
	if v.Empty {
		return 0
	}
	return v.Last - v.First + 1
}

func (v VisibleRange) Contains(row int) bool {
	return !v.Empty && row >= v.First && row <= v.Last
}

// WindowOptions configures a Windower. Heights and offsets are in terminal
// rows.
type WindowOptions struct {
	// RowHeight is the constant row height, used when RowHeightFunc is nil.
	// Default: 1.
	RowHeight int
	// RowHeightFunc returns the height of one row. Heights below zero count as
	// zero.
	RowHeightFunc func(row int) int
	// Overscan is the number of extra rows kept on each side of the visible
	// rows.
	Overscan int
}

type windowKey struct {
	rowCount int
	offset   int
	height   int
	overscan int
	heights  uint64
}

// Windower maps a scroll offset and viewport height onto the rows that
// intersect the viewport.
//
// Variable heights are indexed with a prefix-sum array (tops[i] is the offset
// of row i, tops[rowCount] the total height) that is rebuilt only from the
// first invalidated row. Results are cached on their inputs, so reading
// Visible repeatedly, or after a burst of scroll events, costs one lookup.
type Windower struct {
	opt WindowOptions

	rowCount int
	offset   int
	height   int

	tops       []int
	validUntil int // tops[0..validUntil] are up to date
	heightsVer uint64

	cached    bool
	cacheKey  windowKey
	cacheVals VisibleRange
}

func NewWindower(rowCount int, opt WindowOptions) *Windower {
	if opt.RowHeight <= 0 {
		opt.RowHeight = 1
	}
	if opt.Overscan < 0 {
		opt.Overscan = 0
	}
	w := &Windower{opt: opt}
	w.SetRowCount(rowCount)
	return w
}

func (w *Windower) RowCount() int { return w.rowCount }

func (w *Windower) Offset() int { return w.offset }

func (w *Windower) ViewportHeight() int { return w.height }

func (w *Windower) Overscan() int { return w.opt.Overscan }

func (w *Windower) variable() bool { return w.opt.RowHeightFunc != nil }

// SetRowCount resizes the row index. Heights of surviving rows are kept.
func (w *Windower) SetRowCount(n int) bool {
	if n < 0 {
		n = 0
	}
	if n == w.rowCount && w.tops != nil {
		return false
	}
	if w.variable() {
		w.validUntil = minInt(w.validUntil, minInt(n, w.rowCount))
		if cap(w.tops) >= n+1 {
			w.tops = w.tops[:n+1]
		} else {
			next := make([]int, n+1)
			copy(next, w.tops)
			w.tops = next
		}
	} else {
		w.tops = []int{}
	}
	w.rowCount = n
	w.heightsVer++
	w.offset = clampInt(w.offset, 0, w.MaxScroll())
	return true
}

// SetRowHeightFunc switches to variable heights (nil returns to constant).
func (w *Windower) SetRowHeightFunc(fn func(row int) int) {
	w.opt.RowHeightFunc = fn
	w.validUntil = 0
	if fn != nil {
		w.tops = make([]int, w.rowCount+1)
	} else {
		w.tops = []int{}
	}
	w.heightsVer++
	w.offset = clampInt(w.offset, 0, w.MaxScroll())
}

// InvalidateHeights marks the heights of rows >= from as stale.
func (w *Windower) InvalidateHeights(from int) {
	if from < 0 {
		from = 0
	}
	if w.variable() && from < w.validUntil {
		w.validUntil = from
	}
	w.heightsVer++
	w.offset = clampInt(w.offset, 0, w.MaxScroll())
}

// SetOffset scrolls to offset, clamped to [0, MaxScroll].
func (w *Windower) SetOffset(offset int) bool {
	offset = clampInt(offset, 0, w.MaxScroll())
	if offset == w.offset {
		return false
	}
	w.offset = offset
	return true
}

// SetViewportHeight resizes the viewport.
func (w *Windower) SetViewportHeight(h int) bool {
	if h < 0 {
		h = 0
	}
	if h == w.height {
		return false
	}
	w.height = h
	w.offset = clampInt(w.offset, 0, w.MaxScroll())
	return true
}

func (w *Windower) SetOverscan(n int) {
	if n < 0 {
		n = 0
	}
	w.opt.Overscan = n
}

func (w *Windower) rowHeight(row int) int {
	if !w.variable() {
		return w.opt.RowHeight
	}
	h := w.opt.RowHeightFunc(row)
	if h < 0 {
		return 0
	}
	return h
}

func (w *Windower) ensureTops() {
	if !w.variable() || w.validUntil >= w.rowCount {
		return
	}
	for i := w.validUntil; i < w.rowCount; i++ {
		w.tops[i+1] = w.tops[i] + w.rowHeight(i)
	}
	w.validUntil = w.rowCount
}

// RowHeight returns the height of row.
func (w *Windower) RowHeight(row int) int {
	if row < 0 || row >= w.rowCount {
		return 0
	}
	return w.rowHeight(row)
}

// RowTop returns the offset of row's top edge. row may equal RowCount, which
// yields the total height.
func (w *Windower) RowTop(row int) int {
	row = clampInt(row, 0, w.rowCount)
	if !w.variable() {
		return row * w.opt.RowHeight
	}
	w.ensureTops()
	return w.tops[row]
}

func (w *Windower) TotalHeight() int { return w.RowTop(w.rowCount) }

// MaxScroll is the largest offset that still fills the viewport.
func (w *Windower) MaxScroll() int {
	return maxInt(0, w.TotalHeight()-w.height)
}

// RowAt returns the row containing offset: the last row whose top is at or
// before it. Offsets past the end map to the last row.
func (w *Windower) RowAt(offset int) (int, bool) {
	if w.rowCount == 0 {
		return 0, false
	}
	if offset < 0 {
		offset = 0
	}
	if !w.variable() {
		return clampInt(offset/w.opt.RowHeight, 0, w.rowCount-1), true
	}
	w.ensureTops()
	// First row whose top is past offset, minus one. Zero-height rows at the
	// same top resolve to the last of them.
	i := sort.Search(w.rowCount, func(i int) bool { return w.tops[i] > offset })
	return clampInt(i-1, 0, w.rowCount-1), true
}

// lastRowBefore returns the last row whose top is strictly before end.
func (w *Windower) lastRowBefore(end int) int {
	if !w.variable() {
		return clampInt((end-1)/w.opt.RowHeight, 0, w.rowCount-1)
	}
	w.ensureTops()
	i := sort.Search(w.rowCount, func(i int) bool { return w.tops[i] >= end })
	return clampInt(i-1, 0, w.rowCount-1)
}

// Visible returns the rows overlapping [offset, offset+height), widened by
// the overscan on each side and clamped to existing rows.
func (w *Windower) Visible() VisibleRange {
	key := windowKey{
		rowCount: w.rowCount,
		offset:   w.offset,
		height:   w.height,
		overscan: w.opt.Overscan,
		heights:  w.heightsVer,
	}
	if w.cached && w.cacheKey == key {
		return w.cacheVals
	}

	v := w.compute()
	w.cached = true
	w.cacheKey = key
	w.cacheVals = v
	return v
}

func (w *Windower) compute() VisibleRange {
	if w.rowCount == 0 {
		return VisibleRange{First: 0, Last: -1, Empty: true}
	}
	first, _ := w.RowAt(w.offset)
	last := first
	if w.height > 0 {
		last = maxInt(first, w.lastRowBefore(w.offset+w.height))
	}
	return VisibleRange{
		First: clampInt(first-w.opt.Overscan, 0, w.rowCount-1),
		Last:  clampInt(last+w.opt.Overscan, 0, w.rowCount-1),
	}
}

// PageRows is the number of rows one viewport page spans at the current
// offset, at least 1.
func (w *Windower) PageRows() int {
	if w.rowCount == 0 || w.height <= 0 {
		return 1
	}
	first, _ := w.RowAt(w.offset)
	last := maxInt(first, w.lastRowBefore(w.offset+w.height))
	return maxInt(1, last-first+1)
}

// EnsureVisible scrolls the minimum distance that brings row fully into the
// viewport (or aligns its top when it is taller than the viewport).
func (w *Windower) EnsureVisible(row int) bool {
	if w.rowCount == 0 || w.height <= 0 {
		return false
	}
	row = clampInt(row, 0, w.rowCount-1)
	top := w.RowTop(row)
	bottom := w.RowTop(row + 1)

	switch {
	case top < w.offset:
		return w.SetOffset(top)
	case bottom > w.offset+w.height:
		if bottom-top > w.height {
			return w.SetOffset(top)
		}
		return w.SetOffset(bottom - w.height)
	default:
		return false
	}
}
