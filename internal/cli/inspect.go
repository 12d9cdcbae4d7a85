package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dipart/pkg/dip"
	errs "github.com/matzehuels/dipart/pkg/errors"
)

// inspectCommand creates the inspect command for showing a validated chip.
func (c *CLI) inspectCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Validate a chip specification and show its pins",
		Args:  fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			chip, err := c.newRunner().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, chip)
			}
			writeSummary(cmd, chip)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the chip as JSON")

	return cmd
}

func writeJSON(cmd *cobra.Command, chip *dip.Chip) error {
	data, err := json.MarshalIndent(chip, "", "  ")
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "cannot encode %s", chip.Name())
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "cannot write output")
	}
	return nil
}

func writeSummary(cmd *cobra.Command, chip *dip.Chip) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, StyleTitle.Render(chip.Title()))
	printKeyValue(out, "Name", chip.Name())
	printKeyValue(out, "Package", fmt.Sprintf("DIP%d", chip.PinCount()))
	printKeyValue(out, "Width", chip.Width().String())
	fmt.Fprintln(out)
	fmt.Fprintln(out, pinTable(chip).Render())
}

// pinTable lays the pins out as a table with one row per pin.
func pinTable(chip *dip.Chip) *table.Table {
	rows := make([][]string, 0, chip.PinCount())
	for n := 1; n <= chip.PinCount(); n++ {
		names := chip.Pin(n).Names()
		rows = append(rows, []string{
			strconv.Itoa(n),
			names[0],
			strings.Join(names[1:], ", "),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Pin", "Name", "Alternates").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleNumber
			case col == 2:
				return StyleDim
			}
			return StyleValue
		})
}
