// Package text provides grapheme-aware padding and stacking primitives for
// fixed-width character diagrams.
//
// Every measurement counts user-perceived characters (grapheme clusters), so
// a label such as "Vᴄᴄ" or "Ā̃" occupies the same number of cells as its
// visible glyph count. All functions are pure and safe for concurrent use.
//
// # Horizontal Alignment
//
//	text.PadLeft(5, "AB")  // "   AB"
//	text.PadRight(5, "AB") // "AB   "
//
// # Vertical Stacking
//
// StackTop and StackBottom split a string into one grapheme per row and pad
// the column with blank rows to a common height:
//
//	text.StackTop(4, "AB")    // ["A", "B", " ", " "]
//	text.StackBottom(4, "AB") // [" ", " ", "A", "B"]
package text

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Blank is the filler cell used for padding and empty stacked rows.
const Blank = " "

// Len returns the number of grapheme clusters in s.
func Len(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes splits s into its grapheme clusters in reading order.
func Graphemes(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// PadLeft right-aligns s in a field of width cells.
// Text longer than width is returned unchanged.
func PadLeft(width int, s string) string {
	n := Len(s)
	if width <= n {
		return s
	}
	return Spaces(width-n) + s
}

// PadRight left-aligns s in a field of width cells.
// Text longer than width is returned unchanged.
func PadRight(width int, s string) string {
	n := Len(s)
	if width <= n {
		return s
	}
	return s + Spaces(width-n)
}

// Spaces returns width blank cells.
func Spaces(width int) string {
	return Repeat(width, ' ')
}

// Repeat returns ch repeated width times. Non-positive widths yield "".
func Repeat(width int, ch rune) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(string(ch), width)
}

// StackTop returns the graphemes of s one per row, followed by blank rows
// until the column is height rows tall.
func StackTop(height int, s string) []string {
	out := Graphemes(s)
	for len(out) < height {
		out = append(out, Blank)
	}
	return out
}

// StackBottom returns the graphemes of s one per row, preceded by blank rows
// so the text ends on the last of height rows.
func StackBottom(height int, s string) []string {
	chars := Graphemes(s)
	out := make([]string, 0, max(height, len(chars)))
	for i := len(chars); i < height; i++ {
		out = append(out, Blank)
	}
	return append(out, chars...)
}
