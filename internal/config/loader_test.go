package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDodgeConfig()) {
		t.Errorf("embedded YAML differs from DefaultDodgeConfig():\n%+v\n%+v", cfg, DefaultDodgeConfig())
	}
}

func TestLoadDodgeCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	data := []byte("player:\n  max_lives: 5\ndifficulty:\n  max_speed: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}

	if cfg.Player.MaxLives != 5 {
		t.Errorf("MaxLives = %d, want 5", cfg.Player.MaxLives)
	}
	if cfg.Difficulty.MaxSpeed != 9 {
		t.Errorf("MaxSpeed = %d, want 9", cfg.Difficulty.MaxSpeed)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Width != 24 || cfg.Obstacles.Capacity != 6 {
		t.Errorf("defaults lost: player.width=%d obstacles.capacity=%d", cfg.Player.Width, cfg.Obstacles.Capacity)
	}
}

func TestLoadDodgeMissingCustomPath(t *testing.T) {
	_, err := LoadDodge(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadDodgeInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  capacity: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDodge(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "obstacles.capacity") {
		t.Errorf("error should name the bad key, got %v", err)
	}
}

func TestParseRejectsReversedMotion(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		key  string
	}{
		{"negative player speed", "player:\n  speed: -3\n", "player.speed"},
		{"negative gift speed", "gifts:\n  speed: -1\n", "gifts.speed"},
		{"negative base speed", "difficulty:\n  base_speed: -2\n", "difficulty.base_speed"},
		{"max below base", "difficulty:\n  base_speed: 4\n  max_speed: 3\n", "difficulty.max_speed"},
		{"negative danger band", "demo:\n  danger_band: -10\n", "demo.danger_band"},
		{"negative dead zone", "demo:\n  dead_zone: -1\n", "demo.dead_zone"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.key) {
				t.Errorf("error should name %s, got %v", tc.key, err)
			}
		})
	}

	if _, err := Parse([]byte("difficulty:\n  base_speed: 3\n  max_speed: 3\n")); err != nil {
		t.Errorf("max equal to base should load: %v", err)
	}
}

func TestLoadDodgeMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("player: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDodge(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateRejectsBadLayout(t *testing.T) {
	cfg := DefaultDodgeConfig()
	cfg.Field.HUDHeight = cfg.Player.Y
	if err := cfg.Validate(); err == nil {
		t.Error("HUD covering the player row should be rejected")
	}

	cfg = DefaultDodgeConfig()
	cfg.Gifts.SpawnChance = 150
	if err := cfg.Validate(); err == nil {
		t.Error("spawn chance above 100 should be rejected")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"normal", DifficultyNormal, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
