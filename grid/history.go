package grid

// Entry is one reversible grid mutation.
//
// Change is the forward mutation; its Invert() is the inverse. The selection
// snapshots let undo and redo put the cursor back where the edit happened.
type Entry struct {
	Change          Change
	SelectionBefore SelectionSnapshot
	SelectionAfter  SelectionSnapshot
}

// Rows is the row span the entry touched.
func (e Entry) Rows() RowSpan { return e.Change.Rows }

// History is a bounded undo/redo log with a cursor. entries[:cursor] can be
// undone, entries[cursor:] redone.
//
// Eviction drops the oldest entries only. Replaying the retained forward
// entries from the state before the oldest one still reproduces the current
// state, because every entry is relative to its predecessor.
type History struct {
	entries []Entry
	cursor  int
	limit   int
}

// NewHistory returns a log keeping at most limit entries. limit <= 0 disables
// recording.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

func (h *History) Limit() int { return h.limit }

func (h *History) Len() int { return len(h.entries) }

// Cursor returns how many entries can currently be undone.
func (h *History) Cursor() int { return h.cursor }

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.entries) }

// Push records e at the cursor and discards any redo branch.
func (h *History) Push(e Entry) {
	if h.limit <= 0 || e.Change.IsEmpty() {
		return
	}
	h.entries = append(h.entries[:h.cursor], e)
	if len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append([]Entry(nil), h.entries[drop:]...)
	}
	h.cursor = len(h.entries)
}

// Undo steps the cursor back and returns the entry to revert.
func (h *History) Undo() (Entry, bool) {
	if !h.CanUndo() {
		return Entry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo steps the cursor forward and returns the entry to re-apply.
func (h *History) Redo() (Entry, bool) {
	if !h.CanRedo() {
		return Entry{}, false
	}
	e := h.entries[h.cursor]
	h.cursor++
	return e, true
}

func (h *History) Clear() {
	h.entries = nil
	h.cursor = 0
}
