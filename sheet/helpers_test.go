package sheet

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sheetgrid/grid"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

var errNoClipboard = errors.New("no clipboard")

func peopleConfig(n int) Config {
	rows := make([]grid.Record, n)
	for i := range rows {
		rows[i] = grid.Record{
			"active":    i%2 == 0,
			"firstName": fmt.Sprintf("first%d", i),
			"lastName":  fmt.Sprintf("last%d", i),
			"age":       20 + i,
		}
	}
	return Config{
		Rows: rows,
		Columns: []grid.Column{
			grid.KeyColumn("active", grid.CheckboxCell{}, grid.WithTitle("Active")),
			grid.KeyColumn("firstName", grid.TextCell{}, grid.WithTitle("First name")),
			grid.KeyColumn("lastName", grid.TextCell{}, grid.WithTitle("Last name")),
			grid.KeyColumn("age", grid.IntCell{}, grid.WithTitle("Age")),
		},
	}
}

func newTestModel(t *testing.T, cfg Config, width, height int) Model {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m.SetSize(width, height)
}

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func active(t *testing.T, m Model) grid.Addr {
	t.Helper()
	a, ok := m.Grid().ActiveCell()
	if !ok {
		t.Fatalf("expected an active cell")
	}
	return a
}
