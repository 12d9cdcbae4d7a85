package dip

import (
	"strconv"
	"strings"

	"github.com/matzehuels/dipart/pkg/text"
)

// renderVertical draws the package upright: left pins walk down the first
// span, right pins walk down the second, one pin per row.
//
//	    _____
//	 1A|*    |VCC
//	 1B|  7  |4B
//	GND|_____|3Y
func (c *Chip) renderVertical(opts RenderOptions, left, right span) []string {
	lmax, lwidths := c.labelWidths(left, opts.Alt)
	rmax, rwidths := c.labelWidths(right, opts.Alt)

	var lnum, rnum int
	if opts.Pins != PinsNone {
		lnum = numberWidth(left) + opts.Pins.gap()
		rnum = numberWidth(right) + opts.Pins.gap()
	}

	thickness := c.width.thickness()
	rows := c.count / 2
	center := thickness / 2
	edge := thickness - 1
	name := text.Graphemes(c.name)
	nameFrom, nameTo, showName := nameRange(rows, len(name))

	lines := make([]string, 0, rows+2)
	lines = append(lines, text.Spaces(lmax+lnum+1)+text.Repeat(thickness, '_'))

	lpin, rpin := left.walk(), right.walk()
	for row := 0; row < rows; row++ {
		var b strings.Builder
		b.WriteString(text.PadLeft(lmax, c.Pin(lpin.current).Horizontal(lwidths, true)))
		if opts.Pins != PinsNone {
			b.WriteString(text.PadLeft(lnum, strconv.Itoa(lpin.current)))
		}

		fill := " "
		if row == rows-1 {
			fill = "_"
		}
		b.WriteByte('|')
		for col := 0; col < thickness; col++ {
			switch {
			case lpin.current == 1 && col == 0:
				b.WriteByte('*')
			case rpin.current == 1 && col == edge:
				b.WriteByte('*')
			case showName && col == center && row >= nameFrom && row < nameTo:
				b.WriteString(name[row-nameFrom])
			default:
				b.WriteString(fill)
			}
		}
		b.WriteByte('|')

		if opts.Pins != PinsNone {
			b.WriteString(text.PadRight(rnum, strconv.Itoa(rpin.current)))
		}
		b.WriteString(text.PadRight(rmax, c.Pin(rpin.current).Horizontal(rwidths, false)))
		lines = append(lines, b.String())

		lpin.next()
		rpin.next()
	}

	if opts.Pins != PinsNone {
		width := lmax + lnum + 1 + (thickness+text.Len(c.title))/2
		lines = append(lines, text.PadLeft(width, c.title))
	}
	return lines
}
