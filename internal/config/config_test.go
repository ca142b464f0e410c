package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.DataDir == "" {
		t.Error("default DataDir is empty")
	}
	if cfg.ReminderIntervalMin != 15 {
		t.Errorf("default reminder interval = %d, want 15", cfg.ReminderIntervalMin)
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := "data_dir: /tmp/mt\nstore: postgres://user@host/db\ndebug: true\nreminder_interval_min: 30\n"
	if err := os.WriteFile(path, []byte(payload), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.DataDir != "/tmp/mt" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Store != "postgres://user@host/db" {
		t.Errorf("Store = %q", cfg.Store)
	}
	if !cfg.Debug {
		t.Error("Debug not parsed")
	}
	if cfg.ReminderIntervalMin != 30 {
		t.Errorf("ReminderIntervalMin = %d", cfg.ReminderIntervalMin)
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data_dir: [broken"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}

func TestLoad_ClampsReminderInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("reminder_interval_min: -5\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ReminderIntervalMin != 15 {
		t.Errorf("ReminderIntervalMin = %d, want default 15", cfg.ReminderIntervalMin)
	}
}

func TestPathHelpers(t *testing.T) {
	cfg := Config{DataDir: "/data"}

	if got := cfg.GoalsPath(); got != filepath.Join("/data", "goals.json") {
		t.Errorf("GoalsPath() = %q", got)
	}
	if got := cfg.CurrentGoalsPath(); got != filepath.Join("/data", "current_goals.json") {
		t.Errorf("CurrentGoalsPath() = %q", got)
	}
	if got := cfg.TodayGoalsPath(); got != filepath.Join("/data", "today_goals.json") {
		t.Errorf("TodayGoalsPath() = %q", got)
	}
	if got := cfg.DailyLogPath(); got != filepath.Join("/data", "daily_logs.json") {
		t.Errorf("DailyLogPath() = %q", got)
	}
}
