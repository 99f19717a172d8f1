package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dancelinks/pkg/errors"
	"github.com/matzehuels/dancelinks/pkg/ring"
)

// configFile is the config file name inside the config directory.
const configFile = "config.toml"

// defaultMaxNodes bounds the node count unless the config overrides it.
// The traversal recurses once per node and prints O(N²) values.
const defaultMaxNodes = 100_000

// Config holds user preferences read from a TOML file:
//
//	marker    = "≬"
//	log_level = "info"
//	stats     = false
//	check     = false
//	max_nodes = 100000
//
//	[dot]
//	rankdir = "LR"
//
// Command-line flags take precedence over file values.
type Config struct {
	Marker   string    `toml:"marker"`
	LogLevel string    `toml:"log_level"`
	Stats    bool      `toml:"stats"`
	Check    bool      `toml:"check"`
	MaxNodes int       `toml:"max_nodes"`
	Dot      DotConfig `toml:"dot"`
}

// DotConfig holds Graphviz output preferences.
type DotConfig struct {
	RankDir string `toml:"rankdir"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Marker:   ring.DefaultMarker,
		LogLevel: "info",
		MaxNodes: defaultMaxNodes,
		Dot:      DotConfig{RankDir: "LR"},
	}
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Validate checks the values a file may have set.
func (c Config) Validate() error {
	if err := errors.ValidateMarker(c.Marker); err != nil {
		return err
	}
	if err := errors.ValidateRankDir(c.Dot.RankDir); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid log_level %q", c.LogLevel)
	}
	if c.MaxNodes < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_nodes must not be negative: %d", c.MaxNodes)
	}
	return nil
}

// LoadConfig reads the config at path on top of [DefaultConfig]. An empty
// path means the default location, where a missing file is not an error.
// It also returns any keys the file set that Config does not know.
func LoadConfig(path string) (Config, []string, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil, nil
		}
		path = filepath.Join(dir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil, nil
		}
		if os.IsNotExist(err) {
			return cfg, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found")
		}
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid %s", path)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return cfg, unknown, nil
}

// loadConfig resolves the config for a command run and applies its log
// level, letting --verbose win.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg, unknown, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.Level()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)

	if len(unknown) > 0 {
		c.Logger.Warn("Ignoring unknown config keys", "keys", strings.Join(unknown, ", "))
	}
	c.Logger.Debug("Config loaded", "marker", cfg.Marker, "max_nodes", cfg.MaxNodes, "check", cfg.Check)
	return nil
}
