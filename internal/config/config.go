package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winfocus/internal/logging"
	"github.com/1broseidon/winfocus/internal/runtimepath"
)

// Config is the effective winfocus configuration.
type Config struct {
	// PaletteBackend selects the launcher used by "pick --palette":
	// auto, rofi, fuzzel, wofi or dmenu.
	PaletteBackend       string `yaml:"palette_backend"`
	PaletteFuzzyMatching bool   `yaml:"palette_fuzzy_matching"`

	Completion CompletionConfig `yaml:"completion"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CompletionConfig tunes suggestion output.
type CompletionConfig struct {
	// MaxResults caps completion candidates; 0 means unlimited.
	MaxResults int `yaml:"max_results"`
	// SuggestOnMiss is how many fuzzy alternatives to print when a query
	// resolves to nothing; 0 disables hints.
	SuggestOnMiss int `yaml:"suggest_on_miss"`
}

// LoggingConfig controls diagnostics and the activity log.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	ActivityLog bool   `yaml:"activity_log"`
	File        string `yaml:"file"` // activity log path; empty uses the runtime dir
	MaxSizeMB   int    `yaml:"max_size_mb"`
	MaxFiles    int    `yaml:"max_files"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		PaletteBackend:       "auto",
		PaletteFuzzyMatching: false,
		Completion: CompletionConfig{
			MaxResults:    0,
			SuggestOnMiss: 3,
		},
		Logging: LoggingConfig{
			Level:       "info",
			ActivityLog: false,
			MaxSizeMB:   10,
			MaxFiles:    3,
		},
	}
}

// LoggerConfig converts the logging section into a logger configuration,
// resolving the default activity log location.
func (c *Config) LoggerConfig() (logging.Config, error) {
	out := logging.Config{
		Level:     logging.ParseLevel(c.Logging.Level),
		MaxSizeMB: c.Logging.MaxSizeMB,
		MaxFiles:  c.Logging.MaxFiles,
	}
	if !c.Logging.ActivityLog {
		return out, nil
	}

	path := strings.TrimSpace(c.Logging.File)
	if path == "" {
		p, err := runtimepath.ActivityLogPath()
		if err != nil {
			return out, err
		}
		path = p
	} else if expanded, err := expandHome(path); err == nil {
		path = expanded
	} else {
		return out, err
	}
	out.FilePath = path
	return out, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.PaletteBackend {
	case "auto", "rofi", "fuzzel", "dmenu", "wofi":
	default:
		return &ValidationError{Path: "palette_backend", Err: fmt.Errorf("palette_backend must be one of: auto, rofi, fuzzel, dmenu, wofi")}
	}
	if c.Completion.MaxResults < 0 {
		return &ValidationError{Path: "completion.max_results", Err: fmt.Errorf("max_results must be >= 0")}
	}
	if c.Completion.SuggestOnMiss < 0 {
		return &ValidationError{Path: "completion.suggest_on_miss", Err: fmt.Errorf("suggest_on_miss must be >= 0")}
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warning, error")}
	}
	if c.Logging.MaxSizeMB < 0 {
		return &ValidationError{Path: "logging.max_size_mb", Err: fmt.Errorf("max_size_mb must be >= 0")}
	}
	if c.Logging.MaxFiles < 1 {
		return &ValidationError{Path: "logging.max_files", Err: fmt.Errorf("max_files must be >= 1")}
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
