package grid

// EventKind is a bitmask of what changed in one committed state transition.
type EventKind uint8

const (
	EventData EventKind = 1 << iota
	EventSelection
	EventViewport
	EventEdit
)

func (k EventKind) Has(other EventKind) bool { return k&other != 0 }

// Event is delivered to subscribers after every committed change, in the
// order the changes happened.
type Event struct {
	Version uint64
	Kind    EventKind
	// Rows is the data row span touched by an EventData change, in
	// post-change indices. It is empty for other kinds.
	Rows RowSpan
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn for change events and returns a function that
// removes it. Subscribers run synchronously, in registration order.
func (g *Grid) Subscribe(fn func(Event)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	g.nextSubID++
	id := g.nextSubID
	g.subs = append(g.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range g.subs {
			if s.id == id {
				g.subs = append(g.subs[:i:i], g.subs[i+1:]...)
				return
			}
		}
	}
}

func (g *Grid) emit(kind EventKind, rows RowSpan) {
	if kind == 0 {
		return
	}
	g.version++
	if !kind.Has(EventData) {
		rows = RowSpan{First: 0, Last: -1}
	}
	ev := Event{Version: g.version, Kind: kind, Rows: rows}
	for _, s := range append([]subscriber(nil), g.subs...) {
		s.fn(ev)
	}
}
