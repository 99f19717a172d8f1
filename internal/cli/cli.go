// Package cli implements the dancelinks command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dancelinks/pkg/buildinfo"
	"github.com/matzehuels/dancelinks/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dancelinks"

	// usageLine is printed to stdout when the node count is missing or
	// extra arguments are given.
	usageLine = "Requires number of nodes to create: " + appName + " 20"
)

// LogInfo is the default log level, exported for use in main.go.
const LogInfo = log.InfoLevel

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives snapshots and other primary output; Err receives the
	// styled status lines. Both default to the process streams.
	Out io.Writer
	Err io.Writer

	cfg        Config
	configPath string
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
		cfg:    DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. The root command itself runs the traversal:
//
//	dancelinks 20
func (c *CLI) RootCommand() *cobra.Command {
	var flags runFlags

	root := &cobra.Command{
		Use:   appName + " N",
		Short: "Dancelinks demonstrates reversible node removal in a circular list",
		Long: `Dancelinks builds a circular doubly linked list of N nodes and walks it
depth-first, detaching one node per level and restoring it on the way back.
Each level prints the ring before the removal and again after the
restoration.`,
		Example: `  # Five nodes, snapshots on stdout
  dancelinks 5

  # Custom marker and a summary on stderr
  dancelinks --marker '<>' --stats 5`,
		Version:       buildinfo.Version,
		Args:          usageArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDance(cmd, args[0], flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/dancelinks/config.toml)")
	flags.register(root)

	root.AddCommand(c.playCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// RegisterHooks routes traversal and teardown events to the CLI logger.
func (c *CLI) RegisterHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetDanceHooks(h)
	observability.SetTeardownHooks(h)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/dancelinks/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
