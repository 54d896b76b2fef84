package sheet

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sheetgrid/grid"
)

// Model is a Bubble Tea component that renders and interacts with a grid.
type Model struct {
	cfg Config
	g   *grid.Grid

	focused bool

	width  int
	height int
	// xOffset is the first rendered column.
	xOffset int

	input textinput.Model

	mouseDragging bool
	dragStart     grid.SelectionSnapshot

	status string
}

// New builds the grid from cfg and wraps it in a Model.
func New(cfg Config) (Model, error) {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.ReadOnly {
		cfg.Options.ReadOnly = true
	}
	g, err := grid.New(cfg.Rows, cfg.Columns, cfg.Options)
	if err != nil {
		return Model{}, err
	}
	if cfg.OnChange != nil {
		onChange := cfg.OnChange
		g.Subscribe(func(ev grid.Event) { onChange(buildChangeEvent(g, ev)) })
	}

	in := textinput.New()
	in.Prompt = ""
	return Model{
		cfg:     cfg,
		g:       g,
		focused: true,
		input:   in,
	}, nil
}

// Grid returns the engine behind the sheet. Changes made through it show up
// on the next render.
func (m Model) Grid() *grid.Grid { return m.g }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size in terminal cells: one header row, the body and
// one status row.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.g.SetViewportHeight(m.bodyHeight())
	m.followActiveColumn()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	if _, ok := m.g.Editing(); ok {
		m.input.Focus()
	}
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.mouseDragging = false
	m.input.Blur()
	return m
}

func (m Model) Focused() bool { return m.focused }

// Status is the last user-facing message: a refused edit, a parse error or a
// paste summary. It is cleared by the next key.
func (m Model) Status() string { return m.status }

// EditText is the text currently in the in-cell editor.
func (m Model) EditText() string { return m.input.Value() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd, _ = m.HandleKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		if _, ok := m.g.Editing(); ok {
			// Cursor blink and other editor messages.
			m.input, cmd = m.input.Update(msg)
		}
	}
	m.syncEditor()
	return m, cmd
}

// HandleKey routes one key. handled is false when no binding matched; the
// key had no effect and the host may act on it.
func (m Model) HandleKey(msg tea.KeyMsg) (_ Model, _ tea.Cmd, handled bool) {
	if !m.focused {
		return m, nil, false
	}
	c, ok := route(m.cfg.KeyMap, msg, m.editing(), m.activeEditable())
	if !ok {
		return m, nil, false
	}
	m.status = ""
	var cmd tea.Cmd
	m, cmd = m.exec(c, msg)
	m.syncEditor()
	m.followActiveColumn()
	return m, cmd, true
}

func (m Model) activeEditable() bool {
	a, ok := m.g.ActiveCell()
	return ok && m.g.Editable(a)
}

func (m Model) editing() bool {
	_, ok := m.g.Editing()
	return ok
}

// syncEditor closes the text input when the grid closed the edit on its own
// (a host move, an undo).
func (m *Model) syncEditor() {
	if !m.editing() && m.input.Focused() {
		m.input.Blur()
		m.input.SetValue("")
	}
}

func (m Model) bodyHeight() int {
	h := m.height - 2
	if h < 0 {
		return 0
	}
	return h
}
