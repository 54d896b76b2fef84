package grid

import (
	"errors"
	"testing"
)

func mixedColumns() []Column {
	return []Column{
		KeyColumn("id", IntCell{}, WithReadOnly()),
		KeyColumn("name", TextCell{}),
		KeyColumn("age", IntCell{}),
		KeyColumn("member", CheckboxCell{}),
	}
}

func mixedRows() []Record {
	return []Record{
		{"id": 1, "name": "Ada", "age": 36, "member": true},
		{"id": 2, "name": "tab\there", "age": nil, "member": false},
		{"id": 3, "name": "two\nlines", "age": 85, "member": true},
	}
}

func TestSerialize_FormatsAndQuotes(t *testing.T) {
	s, err := NewStore(mixedRows(), mixedColumns(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	got := Serialize(s, Range{Min: Addr{Col: 1, Row: 0}, Max: Addr{Col: 3, Row: 2}})
	want := "Ada\t36\ttrue\n\"tab\there\"\t\tfalse\n\"two\nlines\"\t85\ttrue"
	if got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestSerializeDecode_RoundTrip(t *testing.T) {
	s, err := NewStore(mixedRows(), mixedColumns(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	r := Range{Min: Addr{Col: 1, Row: 0}, Max: Addr{Col: 3, Row: 2}}
	dec := Decode(s, Serialize(s, r), r.Min)

	if len(dec.Skipped) != 0 {
		t.Fatalf("skipped=%v, want none", dec.Skipped)
	}
	if got, want := dec.Block, r; got != want {
		t.Fatalf("block=%v, want %v", got, want)
	}
	if got, want := len(dec.Updates), 9; got != want {
		t.Fatalf("updates=%d, want %d", got, want)
	}
	for _, u := range dec.Updates {
		if got, want := u.Value, s.GetCell(u.Addr); got != want {
			t.Fatalf("%v: value=%v, want %v", u.Addr, got, want)
		}
	}
}

func TestSerializeDecode_EmptyTextIsEmptyCell(t *testing.T) {
	s, err := NewStore([]Record{{"name": ""}, {}}, mixedColumns(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	r := Range{Min: Addr{Col: 1, Row: 0}, Max: Addr{Col: 1, Row: 1}}
	text := Serialize(s, r)
	if got, want := text, "\n\"\""; got != want {
		t.Fatalf("serialize=%q, want %q", got, want)
	}
	dec := Decode(s, text, r.Min)
	if got, want := len(dec.Updates), 2; got != want {
		t.Fatalf("updates=%d, want %d", got, want)
	}
	for _, u := range dec.Updates {
		if u.Value != nil {
			t.Fatalf("%v: value=%#v, want nil", u.Addr, u.Value)
		}
	}
}

func TestDecode_ParseFailureSkipsOnlyThatCell(t *testing.T) {
	s, err := NewStore(mixedRows(), mixedColumns(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	dec := Decode(s, "Bob\tforty\nEve\t29", Addr{Col: 1, Row: 0})

	if got, want := len(dec.Updates), 3; got != want {
		t.Fatalf("updates=%d, want %d", got, want)
	}
	if got, want := len(dec.Skipped), 1; got != want {
		t.Fatalf("skipped=%d, want %d", got, want)
	}
	sk := dec.Skipped[0]
	if got, want := sk.Addr, (Addr{Col: 2, Row: 0}); got != want {
		t.Fatalf("skipped addr=%v, want %v", got, want)
	}
	if !errors.Is(sk.Err, ErrParse) {
		t.Fatalf("skipped err=%v, want ErrParse", sk.Err)
	}
}

func TestDecode_TruncatesColumnsAndReportsGrowth(t *testing.T) {
	s, err := NewStore(mixedRows(), mixedColumns(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	dec := Decode(s, "1\tyes\textra\n2\tno\textra\n3\tx\textra", Addr{Col: 2, Row: 1})

	want := Range{Min: Addr{Col: 2, Row: 1}, Max: Addr{Col: 3, Row: 3}}
	if got := dec.Block; got != want {
		t.Fatalf("block=%v, want %v", got, want)
	}
	if got, want := dec.GrowRows, 1; got != want {
		t.Fatalf("grow=%d, want %d", got, want)
	}
	for _, u := range dec.Updates {
		if u.Addr.Col > 3 {
			t.Fatalf("update past last column: %v", u.Addr)
		}
	}
}

func TestDecode_ReadOnlyColumnSkipped(t *testing.T) {
	s, err := NewStore(mixedRows(), mixedColumns(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	dec := Decode(s, "9\tZed", Addr{})
	if got, want := len(dec.Skipped), 1; got != want {
		t.Fatalf("skipped=%d, want %d", got, want)
	}
	if !errors.Is(dec.Skipped[0].Err, ErrNotEditable) {
		t.Fatalf("err=%v, want ErrNotEditable", dec.Skipped[0].Err)
	}
}

func TestDecode_EmptyText(t *testing.T) {
	s, err := NewStore(mixedRows(), mixedColumns(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if dec := Decode(s, "", Addr{}); !dec.Empty {
		t.Fatalf("expected empty decode, got %+v", dec)
	}
}
