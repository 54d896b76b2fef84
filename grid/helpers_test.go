package grid

import (
	"fmt"
	"testing"
)

func peopleColumns() []Column {
	return []Column{
		KeyColumn("active", CheckboxCell{}, WithTitle("Active")),
		KeyColumn("firstName", TextCell{}, WithTitle("First name")),
		KeyColumn("lastName", TextCell{}, WithTitle("Last name")),
	}
}

func peopleRows(n int) []Record {
	rows := make([]Record, n)
	for i := range rows {
		rows[i] = Record{
			"active":    i%2 == 0,
			"firstName": fmt.Sprintf("first%d", i),
			"lastName":  fmt.Sprintf("last%d", i),
		}
	}
	return rows
}

func newPeopleGrid(t *testing.T, n int, opt Options) *Grid {
	t.Helper()
	g, err := New(peopleRows(n), peopleColumns(), opt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func mustRange(t *testing.T, g *Grid) Range {
	t.Helper()
	r, ok := g.Selection()
	if !ok {
		t.Fatalf("expected a selection range")
	}
	return r
}

func mustActive(t *testing.T, g *Grid) Addr {
	t.Helper()
	a, ok := g.ActiveCell()
	if !ok {
		t.Fatalf("expected an active cell")
	}
	return a
}
