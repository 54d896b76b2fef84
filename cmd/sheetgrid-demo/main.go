package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/sheetgrid"
	"github.com/iw2rmb/sheetgrid/grid"
	"github.com/iw2rmb/sheetgrid/sheet"
)

var quitKey = key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit"))

var helpKey = key.NewBinding(key.WithKeys("f1", "ctrl+g"), key.WithHelp("f1", "help"))

var helpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

type model struct {
	sheet sheet.Model
	help  help.Model
	keys  sheet.KeyMap

	width   int
	changes int
}

func demoRows() []grid.Record {
	names := [][2]string{
		{"Elon", "Musk"},
		{"Jeff", "Bezos"},
		{"Ada", "Lovelace"},
		{"Grace", "Hopper"},
		{"Alan", "Turing"},
		{"Katherine", "Johnson"},
		{"Linus", "Torvalds"},
		{"Margaret", "Hamilton"},
		{"Dennis", "Ritchie"},
		{"Barbara", "Liskov"},
	}
	rows := make([]grid.Record, len(names))
	for i, n := range names {
		rows[i] = grid.Record{
			"active":    i%3 != 1,
			"firstName": n[0],
			"lastName":  n[1],
			"int":       (i + 1) * 100,
		}
	}
	return rows
}

func demoColumns() []grid.Column {
	return []grid.Column{
		grid.KeyColumn("active", grid.CheckboxCell{}, grid.WithTitle("Active")),
		grid.KeyColumn("firstName", grid.TextCell{}, grid.WithTitle("First name")),
		grid.KeyColumn("lastName", grid.TextCell{}, grid.WithTitle("Last name")),
		grid.KeyColumn("int", grid.IntCell{}, grid.WithTitle("Integers")),
	}
}

func newModel() (*model, error) {
	m := &model{help: help.New(), keys: sheet.DefaultKeyMap()}
	s, err := sheet.New(sheet.Config{
		Rows:           demoRows(),
		Columns:        demoColumns(),
		Options:        grid.Options{Overscan: 2, TabPolicy: grid.TabWrap},
		KeyMap:         m.keys,
		Style:          sheet.DefaultStyle(),
		ShowRowNumbers: true,
		ColumnWidth: func(col int) int {
			if col == 0 {
				return 8
			}
			return 14
		},
		Clipboard: sheet.SystemClipboard{},
		OnChange: func(ev sheet.ChangeEvent) {
			if ev.Kind.Has(grid.EventData) {
				m.changes++
			}
		},
	})
	if err != nil {
		return nil, err
	}
	m.sheet = s
	return m, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = maxInt(0, msg.Width-helpPanelStyle.GetHorizontalFrameSize())
		m.sheet = m.sheet.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		case key.Matches(msg, helpKey):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	case sheet.TabOutMsg:
		m.sheet = m.sheet.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	footer := fmt.Sprintf("%s  edits: %d  %s", m.help.ShortHelpView([]key.Binding{quitKey, helpKey}), m.changes, sheetgrid.VersionTag())
	body := m.sheet.View()
	if m.help.ShowAll {
		body = helpOverlay(body, helpPanelStyle.Render(m.help.View(m.keys)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// helpOverlay draws the help panel centered over the sheet, which keeps
// rendering underneath.
func helpOverlay(base, panel string) string {
	return overlay.Composite(panel, base, overlay.Center, overlay.Center, 0, 0)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-version" || os.Args[1] == "--version") {
		fmt.Println(sheetgrid.VersionTag())
		return
	}
	m, err := newModel()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
