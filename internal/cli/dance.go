package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dancelinks/pkg/dance"
	"github.com/matzehuels/dancelinks/pkg/errors"
	"github.com/matzehuels/dancelinks/pkg/ring"
)

// largeRing is the size above which a run warns about output volume.
const largeRing = 2_000

// runFlags are the flags of the root command. Flags left unset fall back
// to the config file.
type runFlags struct {
	marker   string
	stats    bool
	check    bool
	maxDepth int
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.marker, "marker", ring.DefaultMarker, "glyph printed around and between values")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "print a run summary to stderr")
	cmd.Flags().BoolVar(&f.check, "check", false, "validate ring links after every restoration")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", -1, "stop descending at this level (-1 for no limit)")
}

// resolve merges flags over the loaded config.
func (f runFlags) resolve(cmd *cobra.Command, cfg Config) (Config, error) {
	if cmd.Flags().Changed("marker") {
		if err := errors.ValidateMarker(f.marker); err != nil {
			return cfg, err
		}
		cfg.Marker = f.marker
	}
	if cmd.Flags().Changed("stats") {
		cfg.Stats = f.stats
	}
	if cmd.Flags().Changed("check") {
		cfg.Check = f.check
	}
	return cfg, nil
}

// usageArgs accepts exactly n positional arguments and answers anything
// else with the usage line.
func usageArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New(errors.ErrCodeUsage, "%s", usageLine)
		}
		return nil
	}
}

// buildRing appends 0..n-1 to a new ring.
func buildRing(n int) *ring.Ring[int] {
	r := ring.New[int]()
	for i := 0; i < n; i++ {
		r.Append(i)
	}
	return r
}

// runDance builds the ring, runs the traversal printing every snapshot,
// and releases the ring.
func (c *CLI) runDance(cmd *cobra.Command, arg string, flags runFlags) error {
	cfg, err := flags.resolve(cmd, c.cfg)
	if err != nil {
		return err
	}
	n, err := errors.ValidateNodeCount(arg, cfg.MaxNodes)
	if err != nil {
		return err
	}

	ctx := withLogger(cmd.Context(), c.Logger)
	if n > largeRing {
		printWarning(c.Err, "%d nodes print about %d values", n, n*n)
	}

	res, released, err := c.dance(ctx, n, cfg, flags.maxDepth)
	if err != nil {
		return err
	}

	if cfg.Stats {
		printStats(c.Err, runStats{
			RunID:     res.ID,
			Nodes:     n,
			Levels:    res.Levels,
			Snapshots: res.Snapshots,
			Released:  released,
		})
	}
	return nil
}

// dance runs the whole lifecycle: allocation, traversal, release. All
// nodes exist before the traversal starts and are released after it ends.
func (c *CLI) dance(ctx context.Context, n int, cfg Config, maxDepth int) (dance.Result, int, error) {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	r := buildRing(n)
	prog.done("Built ring", "nodes", n)

	p := &dance.Printer[int]{W: c.Out, Marker: cfg.Marker}
	res := dance.Run(ctx, r,
		dance.WithVisitor(p.Visit),
		dance.WithCheck(cfg.Check),
		dance.WithMaxDepth(maxDepth),
	)

	released := dance.Teardown(ctx, r)

	if p.Err != nil {
		return res, released, errors.Wrap(errors.ErrCodeInternal, p.Err, "write snapshot")
	}
	if res.Err != nil {
		printError(c.Err, "Ring invariants violated")
		return res, released, errors.Wrap(errors.ErrCodeInvariant, res.Err, "traversal of %d nodes", n)
	}
	return res, released, nil
}
