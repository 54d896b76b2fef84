// Package tsv reads and writes the tab-separated text spreadsheet
// applications put on the clipboard.
//
// Fields are separated by '\t' and rows by '\n'. A field containing a tab, a
// line break or a leading double quote is wrapped in double quotes with inner
// quotes doubled. Split accepts "\r\n" and "\r" line breaks and ignores one
// trailing line break. Line breaks inside quoted fields are kept verbatim.
package tsv

import "strings"

const (
	fieldSep = '\t'
	lineSep  = '\n'
	quote    = '"'
)

// Join encodes rows into clipboard text. Rows are joined with '\n' and no
// trailing line break is written.
func Join(rows [][]string) string {
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte(lineSep)
		}
		// A lone empty field on the last row would read back as a trailing
		// line break, so it is written as an empty quoted field.
		if i == len(rows)-1 && len(row) == 1 && row[0] == "" {
			sb.WriteString(`""`)
			continue
		}
		for j, field := range row {
			if j > 0 {
				sb.WriteByte(fieldSep)
			}
			writeField(&sb, field)
		}
	}
	return sb.String()
}

func needsQuote(field string) bool {
	if field == "" {
		return false
	}
	if field[0] == quote {
		return true
	}
	return strings.ContainsAny(field, "\t\n\r")
}

func endsWithLineBreak(text string) bool {
	return strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\r")
}

func writeField(sb *strings.Builder, field string) {
	if !needsQuote(field) {
		sb.WriteString(field)
		return
	}
	sb.WriteByte(quote)
	sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
	sb.WriteByte(quote)
}

// Split decodes clipboard text into rows of fields. Empty text yields no
// rows; every row has at least one field.
//
// A quote only opens a quoted field at the start of the field; a quoted field
// that is never closed runs to the end of the text.
func Split(text string) [][]string {
	if text == "" {
		return nil
	}

	var (
		rows  [][]string
		row   []string
		field strings.Builder
	)
	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		rows = append(rows, row)
		row = nil
	}

	i := 0
	atFieldStart := true
	for i < len(text) {
		c := text[i]
		if atFieldStart && c == quote {
			i = readQuoted(text, i+1, &field)
			atFieldStart = false
			continue
		}
		switch c {
		case fieldSep:
			endField()
			atFieldStart = true
		case '\r':
			if i+1 < len(text) && text[i+1] == lineSep {
				i++
			}
			endRow()
			atFieldStart = true
		case lineSep:
			endRow()
			atFieldStart = true
		default:
			field.WriteByte(c)
			atFieldStart = false
		}
		i++
	}

	// A trailing line break ends the last row; it does not start a new one.
	if len(row) > 0 || field.Len() > 0 || !endsWithLineBreak(text) {
		endRow()
	}
	return rows
}

// readQuoted consumes a quoted field body starting after the opening quote and
// returns the index just past the closing quote. Characters between the
// closing quote and the next separator are kept literally.
func readQuoted(text string, i int, field *strings.Builder) int {
	for i < len(text) {
		c := text[i]
		if c != quote {
			field.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(text) && text[i+1] == quote {
			field.WriteByte(quote)
			i += 2
			continue
		}
		return i + 1
	}
	return i
}
