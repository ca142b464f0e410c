// Package config loads the optional mindtrack config file
// (~/.config/mindtrack/config.yaml). Flags always override file values;
// a missing file yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lininnin/mindtrack/internal/constants"
)

// Config models config.yaml.
type Config struct {
	// DataDir holds the sqlite database, the goal files and the daily log
	// file. Defaults to ~/.config/mindtrack.
	DataDir string `yaml:"data_dir"`

	// Store is the storage target: a file path for SQLite or a
	// postgres:// connection string.
	Store string `yaml:"store,omitempty"`

	// Debug enables verbose logging to stderr.
	Debug bool `yaml:"debug,omitempty"`

	// ReminderIntervalMin is the Today-So-Far refresh interval used by the
	// TUI, in minutes.
	ReminderIntervalMin int `yaml:"reminder_interval_min,omitempty"`
}

// DefaultDataDir returns ~/.config/mindtrack.
func DefaultDataDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(cfg, constants.AppName), nil
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	dataDir, err := DefaultDataDir()
	if err != nil {
		dataDir = "." + string(filepath.Separator) + constants.AppName
	}
	return Config{
		DataDir:             dataDir,
		ReminderIntervalMin: 15,
	}
}

// Load reads config.yaml from the given path. An empty path means the
// default location; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.DataDir != "" {
		cfg.DataDir = expandHome(cfg.DataDir)
	}
	if cfg.ReminderIntervalMin <= 0 {
		cfg.ReminderIntervalMin = 15
	}

	return cfg, nil
}

// GoalsPath returns the goal master file path under the data directory.
func (c Config) GoalsPath() string {
	return filepath.Join(c.DataDir, constants.GoalsFileName)
}

// CurrentGoalsPath returns the current-goals membership file path.
func (c Config) CurrentGoalsPath() string {
	return filepath.Join(c.DataDir, constants.CurrentGoalsFileName)
}

// TodayGoalsPath returns the today-goals membership file path.
func (c Config) TodayGoalsPath() string {
	return filepath.Join(c.DataDir, constants.TodayGoalsFileName)
}

// DailyLogPath returns the daily log file path.
func (c Config) DailyLogPath() string {
	return filepath.Join(c.DataDir, constants.DailyLogFileName)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
