package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dancelinks/pkg/dance"
	"github.com/matzehuels/dancelinks/pkg/errors"
	tio "github.com/matzehuels/dancelinks/pkg/io"
)

// playCommand creates the play command, an interactive stepper over a
// recorded traversal.
func (c *CLI) playCommand() *cobra.Command {
	var tracePath string

	cmd := &cobra.Command{
		Use:   "play [N]",
		Short: "Step through a traversal interactively",
		Long: `Record the traversal of a ring of N nodes and step through its snapshots.
With --trace, replay a trace written by the trace command instead.

Use ←/→ (or h/l) to move between steps, g/G to jump to the first or last
step, and q to quit.`,
		Example: `  # Record and play five nodes
  dancelinks play 5

  # Replay a saved trace
  dancelinks play --trace run.json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("trace") {
				return usageArgs(1)(cmd, args)
			}
			if tracePath == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--trace needs a file path")
			}
			return cobra.NoArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)

			var nodes int
			var steps []dance.Step[int]
			if cmd.Flags().Changed("trace") {
				rec, err := tio.ImportJSON[int](tracePath)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInvalidInput, err, "load trace")
				}
				nodes, steps = rec.Nodes, rec.Steps
				c.Logger.Debug("Loaded trace", "path", tracePath, "steps", len(steps))
			} else {
				n, err := errors.ValidateNodeCount(args[0], recordLimit(c.cfg.MaxNodes))
				if err != nil {
					return err
				}
				if steps, err = c.record(ctx, n); err != nil {
					return err
				}
				nodes = n
			}

			if len(steps) == 0 {
				printWarning(c.Err, "A ring of %d nodes has nothing to remove", nodes)
				return nil
			}

			p := tea.NewProgram(newPlayModel(steps, c.cfg.Marker), tea.WithContext(ctx))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&tracePath, "trace", "", "replay a JSON trace instead of recording one")
	return cmd
}

var (
	playPhaseStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	playRingStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// playModel is the bubbletea model for stepping through a trace.
type playModel struct {
	steps  []dance.Step[int]
	marker string
	cursor int
}

func newPlayModel(steps []dance.Step[int], marker string) playModel {
	return playModel{steps: steps, marker: marker}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", " ", "n":
		if m.cursor < len(m.steps)-1 {
			m.cursor++
		}
	case "left", "h", "p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.steps) - 1
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Dancing Links"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	s := m.steps[m.cursor]
	value := fmt.Sprint(s.Value)
	verb := "removing"
	if s.Phase == dance.Restoration {
		verb = "restored"
	}
	fmt.Fprintf(&b, "%s %s at depth %d\n",
		playPhaseStyle.Render(verb), StyleRemoved.Render(value), s.Depth)

	b.WriteString(playRingStyle.Render(highlightValue(s.Line(m.marker), m.marker, value)))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.steps))))
	return b.String()
}
