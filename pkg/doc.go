// Package pkg provides the core libraries for dipart pinout rendering.
//
// # Overview
//
// dipart turns a small TOML description of a dual in-line package into an
// ASCII-art pinout, viewed from either face and rotated to any compass
// direction. The pkg directory is organized into these areas:
//
//  1. [dip] - Domain logic (chip model, validation, orientation, rendering)
//  2. [text] - Grapheme-aware measuring and padding
//  3. [pipeline] - Orchestration (load → parse → render)
//  4. [errors] - Coded errors shared by every layer
//  5. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The typical data flow through dipart:
//
//	TOML specification file
//	         ↓
//	    [pipeline] package (read file)
//	         ↓
//	    [dip] package (validate into an immutable Chip)
//	         ↓
//	    [dip] package (resolve orientation + render)
//	         ↓
//	    []string, one terminal row each
//
// # Quick Start
//
// Parse a specification and render it with pin numbers, pin 1 to the east:
//
//	import "github.com/matzehuels/dipart/pkg/dip"
//
//	chip, err := dip.Parse(spec)
//	if err != nil {
//	    return err
//	}
//	for _, line := range chip.Render(dip.RenderOptions{
//	    Direction: dip.East,
//	    Pins:      dip.PinsGap1,
//	}) {
//	    fmt.Println(line)
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/dip/...                # Specific package
//	go test -run Example ./pkg/dip       # Examples only
//
// [dip]: https://pkg.go.dev/github.com/matzehuels/dipart/pkg/dip
// [text]: https://pkg.go.dev/github.com/matzehuels/dipart/pkg/text
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/dipart/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/dipart/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dipart/pkg/buildinfo
package pkg
