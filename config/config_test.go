package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("embedded default drifted from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 1.5\nlevels:\n  complete_delay: 30\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.5 || cfg.Levels.CompleteDelay != 30 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Player.MaxHealth != 100 || cfg.Levels.Max != 5 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero_screen", "screen:\n  width: 0\n"},
		{"negative_cooldown", "enemy:\n  fire_cooldown: -1\n"},
		{"zero_levels", "levels:\n  max: 0\n"},
		{"zero_delay", "levels:\n  complete_delay: 0\n"},
		{"player_too_big", "player:\n  width: 900\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}

	if _, err := Parse([]byte("screen: [1, 2")); err == nil || errors.Is(err, ErrInvalid) {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  move_speed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Player.MoveSpeed != 7 {
		t.Fatalf("expected move speed 7, got %v", cfg.Player.MoveSpeed)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing custom path")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
