package cli

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dancelinks/pkg/errors"
	"github.com/matzehuels/dancelinks/pkg/ring"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Marker != ring.DefaultMarker {
		t.Errorf("Marker = %q, want %q", cfg.Marker, ring.DefaultMarker)
	}
	if cfg.MaxNodes != defaultMaxNodes {
		t.Errorf("MaxNodes = %d, want %d", cfg.MaxNodes, defaultMaxNodes)
	}
	if cfg.Level() != log.InfoLevel {
		t.Errorf("Level() = %v, want info", cfg.Level())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
marker    = "::"
log_level = "debug"
check     = true
max_nodes = 0

[dot]
rankdir = "TB"
`)

	cfg, unknown, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unknown = %v, want none", unknown)
	}

	want := Config{
		Marker:   "::",
		LogLevel: "debug",
		Check:    true,
		MaxNodes: 0,
		Dot:      DotConfig{RankDir: "TB"},
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, `stats = true`)

	cfg, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Stats {
		t.Error("stats should be set")
	}
	if cfg.Marker != ring.DefaultMarker || cfg.Dot.RankDir != "LR" {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}
}

func TestLoadConfigUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
colour = "blue"

[dot]
splines = "ortho"
`)

	_, unknown, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(unknown) != 2 {
		t.Fatalf("unknown = %v, want 2 keys", unknown)
	}
	if unknown[0] != "colour" || unknown[1] != "dot.splines" {
		t.Errorf("unknown = %v", unknown)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code errors.Code
	}{
		{
			name: "missing explicit file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			code: errors.ErrCodeFileNotFound,
		},
		{
			name: "malformed toml",
			path: func(t *testing.T) string { return writeConfig(t, `marker = `) },
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "invalid marker",
			path: func(t *testing.T) string { return writeConfig(t, `marker = "a b"`) },
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "invalid rankdir",
			path: func(t *testing.T) string { return writeConfig(t, "[dot]\nrankdir = \"up\"") },
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "invalid log level",
			path: func(t *testing.T) string { return writeConfig(t, `log_level = "loud"`) },
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "negative max_nodes",
			path: func(t *testing.T) string { return writeConfig(t, `max_nodes = -1`) },
			code: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadConfig(tt.path(t))
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, unknown, err := LoadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg != DefaultConfig() || unknown != nil {
		t.Errorf("cfg = %+v, unknown = %v", cfg, unknown)
	}
}

func TestConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := configDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, appName); got != want {
		t.Errorf("configDir() = %q, want %q", got, want)
	}
}
