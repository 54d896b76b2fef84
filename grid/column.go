package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one row: a mapping of column key to value. The grid only looks at
// keys its columns know about.
//
// Stored records are treated as immutable; writes go through With or a
// column's Write, both of which return a copy.
type Record map[string]any

// With returns a copy of r with key set to v.
func (r Record) With(key string, v any) Record {
	out := make(Record, len(r)+1)
	for k, val := range r {
		out[k] = val
	}
	out[key] = v
	return out
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Column is the capability set the engine uses to read, write, copy and paste
// a column's cells. The engine never inspects values beyond these functions.
type Column interface {
	Key() string
	Read(rec Record) any
	Write(rec Record, v any) Record
	Parse(text string) (any, error)
	Format(v any) string
	Editable() bool
}

// Clearer is implemented by columns with a dedicated "deleted" value.
// Columns without it are cleared to nil.
type Clearer interface {
	EmptyValue() any
}

// Toggler is implemented by columns whose cells flip in place instead of
// opening an editor (for example checkboxes).
type Toggler interface {
	Toggle(v any) any
}

// Titled is implemented by columns that carry a header label.
type Titled interface {
	Title() string
}

// CellType converts values of one representation to and from clipboard text.
type CellType interface {
	Parse(text string) (any, error)
	Format(v any) string
	EmptyValue() any
}

// ColumnOption configures a KeyColumn.
type ColumnOption func(*KeyCol)

func WithTitle(title string) ColumnOption {
	return func(c *KeyCol) { c.title = title }
}

func WithReadOnly() ColumnOption {
	return func(c *KeyCol) { c.readOnly = true }
}

// KeyCol binds a CellType to one record key.
type KeyCol struct {
	key      string
	title    string
	typ      CellType
	readOnly bool
}

// KeyColumn returns a column reading and writing rec[key] with typ.
// A nil typ defaults to TextCell.
func KeyColumn(key string, typ CellType, opts ...ColumnOption) *KeyCol {
	if typ == nil {
		typ = TextCell{}
	}
	c := &KeyCol{key: key, title: key, typ: typ}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *KeyCol) Key() string { return c.key }

func (c *KeyCol) Title() string { return c.title }

func (c *KeyCol) Type() CellType { return c.typ }

func (c *KeyCol) Read(rec Record) any {
	if rec == nil {
		return nil
	}
	return rec[c.key]
}

func (c *KeyCol) Write(rec Record, v any) Record { return rec.With(c.key, v) }

func (c *KeyCol) Parse(text string) (any, error) { return c.typ.Parse(text) }

func (c *KeyCol) Format(v any) string { return c.typ.Format(v) }

func (c *KeyCol) Editable() bool { return !c.readOnly }

func (c *KeyCol) EmptyValue() any { return c.typ.EmptyValue() }

func (c *KeyCol) Toggle(v any) any {
	t, ok := c.typ.(Toggler)
	if !ok {
		return v
	}
	return t.Toggle(v)
}

// IsToggle reports whether the column's cell type toggles in place.
func (c *KeyCol) IsToggle() bool {
	_, ok := c.typ.(Toggler)
	return ok
}

// ColumnDef is a Column assembled from functions, for cells that do not map
// to a single record key (computed or nested values).
type ColumnDef struct {
	ID         string
	Label      string
	ReadFunc   func(rec Record) any
	WriteFunc  func(rec Record, v any) Record
	ParseFunc  func(text string) (any, error)
	FormatFunc func(v any) string
	ReadOnly   bool
}

func (d ColumnDef) Key() string { return d.ID }

func (d ColumnDef) Title() string {
	if d.Label == "" {
		return d.ID
	}
	return d.Label
}

func (d ColumnDef) Read(rec Record) any {
	if d.ReadFunc == nil {
		if rec == nil {
			return nil
		}
		return rec[d.ID]
	}
	return d.ReadFunc(rec)
}

func (d ColumnDef) Write(rec Record, v any) Record {
	if d.WriteFunc == nil {
		return rec.With(d.ID, v)
	}
	return d.WriteFunc(rec, v)
}

func (d ColumnDef) Parse(text string) (any, error) {
	if d.ParseFunc == nil {
		return TextCell{}.Parse(text)
	}
	return d.ParseFunc(text)
}

func (d ColumnDef) Format(v any) string {
	if d.FormatFunc == nil {
		return TextCell{}.Format(v)
	}
	return d.FormatFunc(v)
}

func (d ColumnDef) Editable() bool { return !d.ReadOnly }

// emptyValue returns the value Delete writes into a cell of col.
func emptyValue(col Column) any {
	if c, ok := col.(Clearer); ok {
		return c.EmptyValue()
	}
	return nil
}

// toggler returns col's Toggler when its cells actually toggle.
func toggler(col Column) (Toggler, bool) {
	if kc, ok := col.(*KeyCol); ok {
		if !kc.IsToggle() {
			return nil, false
		}
		return kc, true
	}
	t, ok := col.(Toggler)
	return t, ok
}

func columnTitle(col Column) string {
	if t, ok := col.(Titled); ok {
		return t.Title()
	}
	return col.Key()
}

// TextCell holds string values. Empty text parses to nil, so a stored ""
// and an absent value are the same empty cell: both format as "" and both
// come back from a paste as nil. "" is not a representable TextCell value.
type TextCell struct{}

func (TextCell) Parse(text string) (any, error) {
	if text == "" {
		return nil, nil
	}
	return text, nil
}

func (TextCell) Format(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (TextCell) EmptyValue() any { return nil }

// IntCell holds int values. Blank text parses to nil.
type IntCell struct{}

func (IntCell) Parse(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(text, ",", ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrParse, text)
	}
	return n, nil
}

func (IntCell) Format(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

func (IntCell) EmptyValue() any { return nil }

// FloatCell holds float64 values. Blank text parses to nil.
type FloatCell struct{}

func (FloatCell) Parse(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrParse, text)
	}
	return f, nil
}

func (FloatCell) Format(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

func (FloatCell) EmptyValue() any { return nil }

// CheckboxCell holds bool values and toggles in place.
type CheckboxCell struct{}

func (CheckboxCell) Parse(text string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "yes", "on", "x", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	default:
		return nil, fmt.Errorf("%w: %q is not a boolean", ErrParse, text)
	}
}

func (CheckboxCell) Format(v any) string {
	if b, ok := v.(bool); ok && b {
		return "true"
	}
	return "false"
}

func (CheckboxCell) EmptyValue() any { return false }

func (CheckboxCell) Toggle(v any) any {
	b, _ := v.(bool)
	return !b
}
