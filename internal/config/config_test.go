package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	thr := c.Thresholds()
	if thr.CriticalDrop != 30 || thr.WarningDrop != 15 || thr.AnomalyZScore != 3 {
		t.Fatalf("thresholds = %#v", thr)
	}
	if thr.MissingCritical != 40 || thr.MissingWarning != 20 {
		t.Fatalf("thresholds = %#v", thr)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.AnomalyZScore = 2.5
	c.WarningDrop = 12
	if err := Save(c, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(home, ".data-agent", "config.yaml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(b), "anomaly_zscore: 2.5") {
		t.Fatalf("config contents:\n%s", b)
	}

	back, err := Load("")
	if err != nil {
		t.Fatalf("Load again: %v", err)
	}
	if back.AnomalyZScore != 2.5 || back.WarningDrop != 12 {
		t.Fatalf("round trip = %#v", back)
	}
	// Untouched keys keep their defaults.
	if back.CriticalDrop != 30 {
		t.Fatalf("critical_drop = %g", back.CriticalDrop)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("missing_warning: 10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.MissingWarning != 10 || c.MissingCritical != 40 {
		t.Fatalf("config = %#v", c)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DATA_AGENT_ANOMALY_ZSCORE", "2")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.AnomalyZScore != 2 {
		t.Fatalf("anomaly_zscore = %g", c.AnomalyZScore)
	}
}
