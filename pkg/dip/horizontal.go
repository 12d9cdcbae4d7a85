package dip

import (
	"strconv"
	"strings"

	"github.com/matzehuels/dipart/pkg/text"
)

// renderHorizontal draws the package lying down: top pins walk left to right
// along the first span, bottom pins along the second. Every pin owns two
// cells per row, the outline cell and the pin cell, so the body is
// count+1 cells wide.
//
//	 P V
//	 A D
//	 6 D
//	+---+
//	|  *|
//	|   |
//	+---+
func (c *Chip) renderHorizontal(opts RenderOptions, top, bottom span) []string {
	height := c.width.height()
	positions := c.count / 2
	nameRow := height/2 + 1
	name := text.Graphemes(c.name)
	nameFrom, nameTo, showName := nameRange(c.count, len(name))

	inName := func(cell int) bool {
		return showName && cell >= nameFrom && cell < nameTo
	}

	lines := c.stackPins(nil, top, opts, true)
	for row := 1; row <= height; row++ {
		border := row == 1 || row == height
		withName := row == nameRow

		var b strings.Builder
		tpin, bpin := top.walk(), bottom.walk()
		for pos := 1; pos <= positions; pos++ {
			cell := (pos - 1) * 2

			switch {
			case pos == 1 && border:
				b.WriteByte('+')
			case pos == 1:
				b.WriteByte('|')
			case border:
				b.WriteByte('-')
			case withName && inName(cell):
				b.WriteString(name[cell-nameFrom])
			default:
				b.WriteByte(' ')
			}

			switch {
			case border:
				b.WriteByte('-')
			case row == 2 && tpin.current == 1:
				b.WriteByte('*')
			case row == height-1 && bpin.current == 1:
				b.WriteByte('*')
			case withName && inName(cell+1):
				b.WriteString(name[cell+1-nameFrom])
			default:
				b.WriteByte(' ')
			}

			tpin.next()
			bpin.next()
		}
		if border {
			b.WriteByte('+')
		} else {
			b.WriteByte('|')
		}
		lines = append(lines, b.String())
	}
	lines = c.stackPins(lines, bottom, opts, false)

	if opts.Pins != PinsNone {
		width := (c.count + 1 + text.Len(c.title)) / 2
		lines = append(lines, text.PadLeft(width, c.title))
	}
	return lines
}

// stackPins appends the vertically stacked names, and optionally numbers,
// of the pins on s. Above the package the names come first and the numbers
// sit against the outline; below it the order is reversed. A single blank
// row separates the name block from the number block.
func (c *Chip) stackPins(lines []string, s span, opts RenderOptions, top bool) []string {
	nameHeight, widths := c.labelWidths(s, opts.Alt)
	numberHeight := numberWidth(s)
	showNumbers := opts.Pins != PinsNone

	names := make([]strings.Builder, nameHeight)
	numbers := make([]strings.Builder, numberHeight)
	stackNumber := text.StackTop
	if top {
		stackNumber = text.StackBottom
	}

	for pin := s.walk(); ; pin.next() {
		label := c.Pin(pin.current).Vertical(widths, top)
		for i := range names {
			names[i].WriteByte(' ')
			names[i].WriteString(label[i])
		}
		if showNumbers {
			digits := stackNumber(numberHeight, strconv.Itoa(pin.current))
			for i := range numbers {
				numbers[i].WriteByte(' ')
				numbers[i].WriteString(digits[i])
			}
		}
		if pin.current == pin.stop {
			break
		}
	}

	if top {
		lines = appendRows(lines, names)
		if showNumbers {
			lines = append(lines, text.Blank)
			lines = appendRows(lines, numbers)
		}
		return lines
	}
	if showNumbers {
		lines = appendRows(lines, numbers)
		lines = append(lines, text.Blank)
	}
	return appendRows(lines, names)
}

func appendRows(lines []string, rows []strings.Builder) []string {
	for i := range rows {
		lines = append(lines, rows[i].String())
	}
	return lines
}
