package dip

import (
	"fmt"
	"strings"
)

// PackageWidth is the row spacing of a DIP package in mil.
type PackageWidth int

const (
	Mil300 PackageWidth = 300
	Mil600 PackageWidth = 600
)

func (w PackageWidth) String() string { return fmt.Sprintf("%dmil", int(w)) }

// thickness is the number of body columns between the '|' borders when the
// package is drawn with pins on the left and right.
func (w PackageWidth) thickness() int {
	if w == Mil600 {
		return 9
	}
	return 5
}

// height is the number of lines, borders included, when the package is drawn
// with pins on the top and bottom.
func (w PackageWidth) height() int {
	if w == Mil600 {
		return 6
	}
	return 4
}

// Chip is a validated DIP integrated circuit. It is immutable and safe for
// concurrent use; the only way to obtain one is Parse.
type Chip struct {
	name  string
	title string
	count int
	width PackageWidth
	pins  map[int]PinLabel
}

// Name returns the part name drawn inside the package outline.
func (c *Chip) Name() string { return c.name }

// Title returns the caption printed under diagrams with pin numbers.
// It defaults to Name.
func (c *Chip) Title() string { return c.title }

// PinCount returns the number of pins, always even and below 50.
func (c *Chip) PinCount() int { return c.count }

// Width returns the package row spacing.
func (c *Chip) Width() PackageWidth { return c.width }

// Pin returns the label of pin n. It panics if n is outside 1..PinCount,
// which Parse guarantees never happens for in-range numbers.
func (c *Chip) Pin(n int) PinLabel {
	label, ok := c.pins[n]
	if !ok {
		panic(fmt.Sprintf("dip: pin %d out of range 1..%d", n, c.count))
	}
	return label
}

// String summarises the chip on one line:
//
//	[name=SN7400 title=SN7400 package=DIP14 width=300mil pins=[1A 1B ... VCC]]
func (c *Chip) String() string {
	names := make([]string, c.count)
	for i := range names {
		names[i] = c.Pin(i + 1).Primary()
	}
	return fmt.Sprintf("[name=%s title=%s package=DIP%d width=%s pins=[%s]]",
		c.name, c.title, c.count, c.width, strings.Join(names, " "))
}
