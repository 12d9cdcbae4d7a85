package dip

import (
	"fmt"
	"strings"
)

// Side selects which face of the package is presented to the viewer.
type Side int

const (
	Top    Side = iota // marking side up
	Bottom             // solder side up, mirrored left to right
)

// Direction is the compass direction pin 1's end of the package points to.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// PinDisplay controls whether pin numbers are printed next to labels and how
// many blank cells separate them from the package outline.
type PinDisplay int

const (
	PinsNone PinDisplay = iota
	PinsGap1
	PinsGap2
)

// AltDisplay controls how many comma-separated names are rendered per pin.
type AltDisplay int

const (
	AltNone   AltDisplay = iota // primary name only
	AltFirst                    // primary plus first alternate
	AltSecond                   // primary plus two alternates
	AltAll                      // every alternate
)

// RenderOptions selects the view produced by Chip.Render.
// The zero value is the top face pointing north with names only.
type RenderOptions struct {
	Side      Side
	Direction Direction
	Pins      PinDisplay
	Alt       AltDisplay
}

func (o RenderOptions) String() string {
	return fmt.Sprintf("side=%s direction=%s pins=%s alt=%s", o.Side, o.Direction, o.Pins, o.Alt)
}

var sideNames = []string{"top", "bottom"}

func (s Side) String() string { return enumName(sideNames, int(s)) }

// Flip returns the opposite face.
func (s Side) Flip() Side {
	if s == Top {
		return Bottom
	}
	return Top
}

var directionNames = []string{"north", "east", "south", "west"}

func (d Direction) String() string { return enumName(directionNames, int(d)) }

// Clockwise returns the direction a quarter turn clockwise from d.
func (d Direction) Clockwise() Direction { return (d + 1) % 4 }

// CounterClockwise returns the direction a quarter turn counter-clockwise from d.
func (d Direction) CounterClockwise() Direction { return (d + 3) % 4 }

// vertical reports whether the pins run down the left and right edges.
func (d Direction) vertical() bool { return d == North || d == South }

var pinDisplayNames = []string{"none", "pin", "pin2"}

func (p PinDisplay) String() string { return enumName(pinDisplayNames, int(p)) }

// Next cycles none → pin → pin2 → none.
func (p PinDisplay) Next() PinDisplay { return (p + 1) % 3 }

// gap is the number of blank cells between the outline and a pin number.
func (p PinDisplay) gap() int { return int(p) }

var altDisplayNames = []string{"none", "alt1", "alt2", "all"}

func (a AltDisplay) String() string { return enumName(altDisplayNames, int(a)) }

// Next cycles none → alt1 → alt2 → all → none.
func (a AltDisplay) Next() AltDisplay { return (a + 1) % 4 }

// columns is the maximum number of name columns rendered per pin,
// or -1 when every alternate is shown.
func (a AltDisplay) columns() int {
	switch a {
	case AltFirst:
		return 2
	case AltSecond:
		return 3
	case AltAll:
		return -1
	default:
		return 1
	}
}

// ParseSide parses "top"/"t" or "bottom"/"b" (case-insensitive).
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "t":
		return Top, nil
	case "bottom", "b":
		return Bottom, nil
	}
	return Top, fmt.Errorf("invalid side: %s (must be 'top' or 'bottom')", s)
}

// ParseDirection parses a compass direction by full name or initial letter.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}
	return North, fmt.Errorf("invalid direction: %s (must be 'north', 'east', 'south' or 'west')", s)
}

// ParsePinDisplay parses "none", "pin" or "pin2".
func ParsePinDisplay(s string) (PinDisplay, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return PinsNone, nil
	case "pin", "pin1":
		return PinsGap1, nil
	case "pin2":
		return PinsGap2, nil
	}
	return PinsNone, fmt.Errorf("invalid pin display: %s (must be 'none', 'pin' or 'pin2')", s)
}

// ParseAltDisplay parses "none", "alt1", "alt2" or "all".
func ParseAltDisplay(s string) (AltDisplay, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return AltNone, nil
	case "alt1":
		return AltFirst, nil
	case "alt2":
		return AltSecond, nil
	case "all", "alt":
		return AltAll, nil
	}
	return AltNone, fmt.Errorf("invalid alternate name display: %s (must be 'none', 'alt1', 'alt2' or 'all')", s)
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}
