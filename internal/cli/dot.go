package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dancelinks/pkg/errors"
)

// dotCommand creates the dot command, which draws the initial ring.
func (c *CLI) dotCommand() *cobra.Command {
	var output string
	var svg bool
	var rankdir string

	cmd := &cobra.Command{
		Use:   "dot N",
		Short: "Draw a ring of N nodes as Graphviz DOT or SVG",
		Long: `Draw the ring a traversal would start from.

Solid edges follow next links, dashed edges follow prev links, and the
entry point has a double border.`,
		Example: `  # DOT on stdout
  dancelinks dot 4

  # Rendered SVG
  dancelinks dot 4 --svg -o ring.svg`,
		Args: usageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := errors.ValidateNodeCount(args[0], c.cfg.MaxNodes)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("rankdir") {
				rankdir = c.cfg.Dot.RankDir
			}
			if err := errors.ValidateRankDir(rankdir); err != nil {
				return err
			}

			r := buildRing(n)
			defer r.TeardownAll()

			var data []byte
			if svg {
				sp := newSpinner(cmd.Context(), c.Err, "Rendering SVG...")
				sp.Start()
				data, err = r.RenderSVG(cmd.Context(), rankdir)
				if sp.Cancelled() {
					sp.Stop()
					return cmd.Context().Err()
				}
				if err != nil {
					sp.StopWithError("Rendering failed")
					return errors.Wrap(errors.ErrCodeRender, err, "render ring of %d nodes", n)
				}
				sp.StopWithSuccess(fmt.Sprintf("Rendered %d bytes of SVG", len(data)))
			} else {
				data = []byte(r.ToDOT(rankdir))
			}

			if output == "" {
				_, err := c.Out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			printSuccess(c.Err, "Ring of %d nodes drawn", n)
			printFile(c.Err, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG with Graphviz instead of emitting DOT")
	cmd.Flags().StringVar(&rankdir, "rankdir", "LR", "Graphviz rank direction (LR, RL, TB, BT)")

	return cmd
}
