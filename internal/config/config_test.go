package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DUNGEON_SEED", "DUNGEON_UI", "DUNGEON_LANG", "DUNGEON_PLAYER_NAME", "DUNGEON_OTEL_ENABLED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Seed != 0 || cfg.UI != UIConsole || cfg.Lang != "en" || cfg.PlayerName != "Seeker" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry should be off by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DUNGEON_SEED", "42")
	t.Setenv("DUNGEON_UI", "screen")
	t.Setenv("DUNGEON_LANG", "ru")
	t.Setenv("DUNGEON_OTEL_ENABLED", "true")
	t.Setenv("HONEYCOMB_DUNGEON_API_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Seed != 42 || cfg.UI != UIScreen || cfg.Lang != "ru" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.HoneycombAPIKey != "secret" {
		t.Errorf("telemetry = %+v", cfg.Telemetry)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DUNGEON_UI", "gui")
	if _, err := Load(); err == nil {
		t.Error("Load() with DUNGEON_UI=gui should fail")
	}

	t.Setenv("DUNGEON_UI", "console")
	t.Setenv("DUNGEON_SEED", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("Load() with a non-numeric seed should fail")
	}
}
