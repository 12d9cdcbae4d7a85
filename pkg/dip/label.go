package dip

import (
	"strings"

	"github.com/matzehuels/dipart/pkg/text"
)

// PinLabel holds the names a single pin carries, as authored in the
// specification: a comma-separated list whose first entry is the primary name.
type PinLabel struct {
	raw string
}

// NewPinLabel wraps the raw comma-separated names of a pin.
func NewPinLabel(raw string) PinLabel {
	return PinLabel{raw: raw}
}

// Raw returns the names exactly as written in the specification.
func (p PinLabel) Raw() string { return p.raw }

// Names returns every name with surrounding whitespace trimmed.
// The result always has at least one element.
func (p PinLabel) Names() []string {
	names := strings.Split(p.raw, ",")
	for i, n := range names {
		names[i] = strings.TrimSpace(n)
	}
	return names
}

// Primary returns the first name.
func (p PinLabel) Primary() string {
	return p.Names()[0]
}

// Horizontal lays the names out on one line in columns of the given widths,
// separated by a single space. On the left of the package the primary name
// is the rightmost column, nearest the outline, and every column is
// right-aligned with missing alternates left blank. On the right the
// primary name comes first and columns are left-aligned; trailing missing
// alternates contribute only their separator.
func (p PinLabel) Horizontal(widths []int, left bool) string {
	names := p.Names()
	columns := len(widths)
	var b strings.Builder
	for c := 0; c < columns; c++ {
		if c != 0 {
			b.WriteByte(' ')
		}
		if left {
			n := columns - c - 1
			if n >= len(names) {
				b.WriteString(text.Spaces(widths[n]))
			} else {
				b.WriteString(text.PadLeft(widths[n], names[n]))
			}
		} else if c < len(names) {
			b.WriteString(text.PadRight(widths[c], names[c]))
		}
	}
	return b.String()
}

// Vertical lays the names out as a column of single graphemes, one per row,
// with a blank row between name columns. Above the package (top) the
// primary name is last and bottom-aligned so it touches the outline; below
// the package it is first and top-aligned. The result is always
// sum(widths)+len(widths)-1 rows tall.
func (p PinLabel) Vertical(widths []int, top bool) []string {
	names := p.Names()
	columns := len(widths)
	var out []string
	for c := 0; c < columns; c++ {
		if c != 0 {
			out = append(out, text.Blank)
		}
		if top {
			n := columns - 1 - c
			out = append(out, text.StackBottom(widths[n], nameAt(names, n))...)
		} else {
			out = append(out, text.StackTop(widths[c], nameAt(names, c))...)
		}
	}
	return out
}

func nameAt(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return ""
}
