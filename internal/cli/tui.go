package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dipart/pkg/dip"
)

// View styles
var (
	viewFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
	viewStatusStyle = lipgloss.NewStyle().Foreground(colorCyan)
	viewHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ViewModel - Interactive orientation viewer
// =============================================================================

// ViewModel is the bubbletea model for exploring a chip's orientations.
// Every key press re-renders the chip from scratch.
type ViewModel struct {
	Chip    *dip.Chip
	Options dip.RenderOptions
	Lines   []string
}

// NewViewModel creates a viewer showing chip in its initial orientation.
func NewViewModel(chip *dip.Chip, opts dip.RenderOptions) ViewModel {
	return ViewModel{Chip: chip, Options: opts, Lines: chip.Render(opts)}
}

func (m ViewModel) Init() tea.Cmd {
	return nil
}

func (m ViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	opts := m.Options
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "t":
		opts.Side = dip.Top
	case "b":
		opts.Side = dip.Bottom
	case "f":
		opts.Side = opts.Side.Flip()
	case "n":
		opts.Direction = dip.North
	case "e":
		opts.Direction = dip.East
	case "s":
		opts.Direction = dip.South
	case "w":
		opts.Direction = dip.West
	case "r", "right":
		opts.Direction = opts.Direction.Clockwise()
	case "l", "left":
		opts.Direction = opts.Direction.CounterClockwise()
	case "p":
		opts.Pins = opts.Pins.Next()
	case "a":
		opts.Alt = opts.Alt.Next()
	default:
		return m, nil
	}

	if opts != m.Options {
		m.Options = opts
		m.Lines = m.Chip.Render(opts)
	}
	return m, nil
}

func (m ViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Chip.Title()))
	b.WriteString("  ")
	b.WriteString(viewStatusStyle.Render(m.Options.String()))
	b.WriteString("\n")
	b.WriteString(viewFrameStyle.Render(strings.Join(m.Lines, "\n")))
	b.WriteString("\n")
	b.WriteString(viewHelpStyle.Render("t/b/f side  n/e/s/w/r/l direction  p pins  a alt  q quit"))
	b.WriteString("\n")

	return b.String()
}
