package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dipart/pkg/dip"
	errs "github.com/matzehuels/dipart/pkg/errors"
)

// Flag conflict messages.
const (
	errSide      = "Both -t and -b are specified"
	errDirection = "More than one of -n -e -s -w are specified"
	errPins      = "Both --pin and --pin2 are specified"
	errAlt       = "More than one of --alt --alt1 --alt2 are specified"
)

// viewFlags holds the orientation and annotation switches shared by the
// render and view commands. At most one switch of each group may be set.
type viewFlags struct {
	top, bottom              bool
	north, east, south, west bool
	pin, pin2                bool
	alt, alt1, alt2          bool
}

// register adds the switches to cmd.
func (f *viewFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVarP(&f.top, "top", "t", false, "top-side view")
	flags.BoolVarP(&f.bottom, "bottom", "b", false, "bottom-side view")
	flags.BoolVarP(&f.north, "north", "n", false, "pin 1 toward north")
	flags.BoolVarP(&f.east, "east", "e", false, "pin 1 toward east")
	flags.BoolVarP(&f.south, "south", "s", false, "pin 1 toward south")
	flags.BoolVarP(&f.west, "west", "w", false, "pin 1 toward west")
	flags.BoolVar(&f.pin, "pin", false, "show pin numbers with 1 space")
	flags.BoolVar(&f.pin2, "pin2", false, "show pin numbers with 2 spaces")
	flags.BoolVar(&f.alt, "alt", false, "show all alternate names")
	flags.BoolVar(&f.alt1, "alt1", false, "show one alternate name")
	flags.BoolVar(&f.alt2, "alt2", false, "show two alternate names")
}

// options resolves the switches against defaults. Groups with no switch set
// keep the default; conflicting switches are an INVALID_ARGS error.
func (f *viewFlags) options(defaults dip.RenderOptions) (dip.RenderOptions, error) {
	opts := defaults

	switch {
	case f.top && f.bottom:
		return opts, errs.New(errs.ErrCodeInvalidArgs, errSide)
	case f.top:
		opts.Side = dip.Top
	case f.bottom:
		opts.Side = dip.Bottom
	}

	if count(f.north, f.east, f.south, f.west) > 1 {
		return opts, errs.New(errs.ErrCodeInvalidArgs, errDirection)
	}
	switch {
	case f.north:
		opts.Direction = dip.North
	case f.east:
		opts.Direction = dip.East
	case f.south:
		opts.Direction = dip.South
	case f.west:
		opts.Direction = dip.West
	}

	switch {
	case f.pin && f.pin2:
		return opts, errs.New(errs.ErrCodeInvalidArgs, errPins)
	case f.pin:
		opts.Pins = dip.PinsGap1
	case f.pin2:
		opts.Pins = dip.PinsGap2
	}

	if count(f.alt, f.alt1, f.alt2) > 1 {
		return opts, errs.New(errs.ErrCodeInvalidArgs, errAlt)
	}
	switch {
	case f.alt:
		opts.Alt = dip.AltAll
	case f.alt1:
		opts.Alt = dip.AltFirst
	case f.alt2:
		opts.Alt = dip.AltSecond
	}

	return opts, nil
}

func count(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// fileArg accepts exactly one specification file path.
func fileArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errs.New(errs.ErrCodeInvalidArgs, "%s requires exactly one specification file, got %d", cmd.CommandPath(), len(args))
	}
	return nil
}

// renderCommand creates the render command for printing a pinout.
func (c *CLI) renderCommand() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Print the ASCII-art pinout of a chip",
		Long: `Print the ASCII-art pinout of the chip described by a TOML file.

The view defaults to the top side with pin 1 toward north. Defaults can be
changed in the config file; flags always take precedence.`,
		Example: `  dipart render attiny85.toml
  dipart render attiny85.toml -b -e --pin --alt1`,
		Args: fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(c.defaults)
			if err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts dip.RenderOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, path, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range result.Lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return errs.Wrap(errs.ErrCodeIO, err, "cannot write output")
		}
	}
	prog.done(fmt.Sprintf("Rendered DIP%d %s", result.Chip.PinCount(), opts))
	return nil
}
