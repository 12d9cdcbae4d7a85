package dip

import (
	"github.com/matzehuels/dipart/pkg/text"
)

// Render draws the chip as seen from opts.Side with pin 1's end pointing to
// opts.Direction. Each returned string is one terminal row; rows are not
// newline-terminated and may carry trailing blanks from label alignment.
//
// North and south views draw the package upright with one pin per row;
// east and west views draw it lying down with one pin per two columns and
// the names stacked vertically above and below. Pin 1 is marked with '*'.
// When opts.Pins is not PinsNone a final row carries the title.
//
// Render is a pure function of the chip and opts.
func (c *Chip) Render(opts RenderOptions) []string {
	first, second := resolve(opts.Side, opts.Direction, c.count)
	if opts.Direction.vertical() {
		return c.renderVertical(opts, first, second)
	}
	return c.renderHorizontal(opts, first, second)
}

// labelWidths returns the width of every name column shown for the pins on
// s, and the total width of all columns with one separator between each.
func (c *Chip) labelWidths(s span, alt AltDisplay) (total int, widths []int) {
	limit := alt.columns()
	for pin := s.low(); pin <= s.high(); pin++ {
		for i, name := range c.Pin(pin).Names() {
			if limit >= 0 && i >= limit {
				break
			}
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], text.Len(name))
		}
	}
	for _, w := range widths {
		total += w
	}
	return total + len(widths) - 1, widths
}

// numberWidth is the number of cells needed for the widest pin number on s.
func numberWidth(s span) int {
	if s.start < 10 && s.end < 10 {
		return 1
	}
	return 2
}

// nameRange returns the half-open range [from, to) of positions along a
// body of the given length that carry the chip name, centred by integer
// division. ok is false when the name does not fit.
func nameRange(length, name int) (from, to int, ok bool) {
	if name > length {
		return 0, 0, false
	}
	from = (length - name) / 2
	return from, from + name, true
}
