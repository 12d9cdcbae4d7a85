package cli

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/dipart/pkg/errors"
)

// viewCommand creates the view command for exploring orientations interactively.
func (c *CLI) viewCommand() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Rotate and flip a chip pinout interactively",
		Long: `Open an interactive viewer for the chip described by a TOML file.

Flags select the initial view, exactly as for render.`,
		Args: fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(c.defaults)
			if err != nil {
				return err
			}

			if !isTerminal(cmd.OutOrStdout()) {
				return errs.New(errs.ErrCodeInvalidArgs, "view needs an interactive terminal, use render instead")
			}

			ctx := cmd.Context()
			chip, err := c.newRunner().Load(ctx, args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewViewModel(chip, opts),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			final, err := p.Run()
			if err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
					return ctx.Err()
				}
				return errs.Wrap(errs.ErrCodeInternal, err, "viewer failed: %s", err.Error())
			}
			if m, ok := final.(ViewModel); ok {
				loggerFromContext(ctx).Debug("viewer closed", "view", m.Options)
			}
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

// isTerminal reports whether w is a terminal the viewer can draw on.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
