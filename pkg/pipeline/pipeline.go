// Package pipeline provides the load → parse → render pipeline for dipart.
//
// This package is the glue between the pure chip model in package dip and
// the command-line surface. By centralizing it, every command (render,
// view, inspect) reads files, reports errors and logs the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the specification file from disk
//  2. Parse: Validate it into an immutable dip.Chip
//  3. Render: Produce the text diagram for the requested view
//
// Load and Parse are combined in Runner.Load; Render can be called any
// number of times on the resulting chip.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, "attiny412.toml", dip.RenderOptions{
//	    Direction: dip.East,
//	    Pins:      dip.PinsGap1,
//	})
//	if err != nil {
//	    return err
//	}
//	for _, line := range result.Lines {
//	    fmt.Println(line)
//	}
//
// # Errors
//
// Every error returned by the Runner is an *errors.Error whose code tells the
// caller what failed: FILE_NOT_FOUND or IO_ERROR for the Load stage and
// INVALID_SPEC for the Parse stage. Rendering cannot fail.
package pipeline

import (
	"time"

	"github.com/matzehuels/dipart/pkg/dip"
)

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chip is the validated chip model.
	Chip *dip.Chip

	// Options is the view that was rendered.
	Options dip.RenderOptions

	// Lines is the rendered diagram, one terminal row per element.
	Lines []string

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Bytes      int
	LoadTime   time.Duration
	RenderTime time.Duration
}
