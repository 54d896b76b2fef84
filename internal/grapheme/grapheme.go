// Package grapheme measures and fits text to terminal cell widths one
// grapheme cluster at a time.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// ClusterWidth is the terminal cell width of one grapheme cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		// Emoji sequences runewidth cannot size.
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// Width is the terminal cell width of text.
func Width(text string) int {
	n := 0
	for _, c := range Split(text) {
		n += ClusterWidth(c)
	}
	return n
}

// Flatten replaces tabs and line breaks with spaces so text fits on one
// terminal row.
func Flatten(text string) string {
	if !strings.ContainsAny(text, "\t\r\n") {
		return text
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\r', '\n':
			return ' '
		}
		return r
	}, text)
}

// Truncate cuts text to at most width cells without splitting a cluster.
// When text does not fit, tail is appended within the width.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	tw := Width(tail)
	if tw > width {
		tail, tw = "", 0
	}

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		cw := ClusterWidth(c)
		if used+cw > width-tw {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	sb.WriteString(tail)
	return sb.String()
}

// Fit truncates or right-pads text with spaces to exactly width cells.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = Truncate(Flatten(text), width, "…")
	if pad := width - Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

// FitRight is Fit with left padding, for numbers.
func FitRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = Truncate(Flatten(text), width, "…")
	if pad := width - Width(text); pad > 0 {
		text = strings.Repeat(" ", pad) + text
	}
	return text
}
