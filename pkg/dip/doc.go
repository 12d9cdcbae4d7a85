// Package dip models dual in-line package integrated circuits and renders
// them as fixed-width text diagrams.
//
// A Chip is built from a flat TOML specification with Parse and drawn with
// Chip.Render. Rendering is a pure function of the chip and its
// RenderOptions, so a single Chip may be rendered concurrently from many
// goroutines.
//
// # Specification
//
//	name  = "ATtiny412"
//	dip   = 8
//	width = 300
//	1 = "VDD"
//	2 = "PA6, AIN6, TXD"
//	...
//
// Each numbered key names one pin; commas separate the primary name from its
// alternates. Every pin from 1 to dip must be declared.
//
// # Orientation
//
// Direction is where pin 1's end of the package points. North and south draw
// the package upright with pins on the left and right; east and west lay it
// on its side with pins above and below and names stacked one character per
// row. Side selects the face: Bottom mirrors the view, as if the board were
// turned over. Pin 1 is marked with '*'.
//
//	chip, err := dip.Parse(spec)
//	if err != nil {
//	    return err
//	}
//	for _, line := range chip.Render(dip.RenderOptions{Direction: dip.East, Pins: dip.PinsGap1}) {
//	    fmt.Println(line)
//	}
//
// # Text Measurement
//
// All widths are counted in grapheme clusters (see package text), so
// non-ASCII pin names stay aligned.
package dip
