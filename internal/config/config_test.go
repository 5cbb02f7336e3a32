package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DBPath == "" {
		t.Error("DBPath should have a default")
	}
	if cfg.OutputDir == "" {
		t.Error("OutputDir should have a default")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PACING_DB_PATH", "/tmp/override.db")

	cfg := Load()
	if cfg.DBPath != "/tmp/override.db" {
		t.Errorf("DBPath = %q, want env override", cfg.DBPath)
	}
}
