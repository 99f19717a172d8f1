package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dancelinks/pkg/dance"
	"github.com/matzehuels/dancelinks/pkg/errors"
	tio "github.com/matzehuels/dancelinks/pkg/io"
)

// traceCommand creates the trace command, which records a traversal as JSON.
func (c *CLI) traceCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "trace N",
		Short: "Record the traversal of a ring of N nodes as JSON",
		Long: `Record every snapshot of a traversal with its depth and phase and
write the result as JSON. The file can be replayed with play --trace.`,
		Example: `  # JSON on stdout
  dancelinks trace 3

  # Save for later
  dancelinks trace 8 -o run.json && dancelinks play --trace run.json`,
		Args: usageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := errors.ValidateNodeCount(args[0], recordLimit(c.cfg.MaxNodes))
			if err != nil {
				return err
			}

			steps, err := c.record(withLogger(cmd.Context(), c.Logger), n)
			if err != nil {
				return err
			}

			if output == "" {
				return tio.WriteJSON(n, steps, c.Out)
			}
			if err := tio.ExportJSON(n, steps, output); err != nil {
				return err
			}
			printSuccess(c.Err, "Recorded %d steps", len(steps))
			printFile(c.Err, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// maxRecordedNodes caps the commands that keep every snapshot in memory.
// A recording holds about N² values.
const maxRecordedNodes = 2_000

// recordLimit returns the node limit for a recording command given the
// configured limit, where 0 means unlimited.
func recordLimit(max int) int {
	if max == 0 || max > maxRecordedNodes {
		return maxRecordedNodes
	}
	return max
}

// record runs the traversal of a fresh ring of n nodes and keeps every step.
func (c *CLI) record(ctx context.Context, n int) ([]dance.Step[int], error) {
	r := buildRing(n)
	var tr dance.Trace[int]
	res := dance.Run(ctx, r, dance.WithVisitor(tr.Visit), dance.WithCheck(c.cfg.Check))
	dance.Teardown(ctx, r)
	if res.Err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvariant, res.Err, "traversal of %d nodes", n)
	}
	return tr.Steps(), nil
}
