// Package config provides YAML-based game configuration loading and
// difficulty scaling for the dodge simulation.
package config

import (
	"errors"
	"fmt"
)

// DodgeConfig contains all tunable constants of the simulation.
type DodgeConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Missiles   MissileConfig    `yaml:"missiles"`
	Gifts      GiftConfig       `yaml:"gifts"`
	Particles  ParticleConfig   `yaml:"particles"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Demo       DemoConfig       `yaml:"demo"`
	BootSeed   uint32           `yaml:"boot_seed"`
}

// FieldConfig defines the play field in pixels.
type FieldConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	HUDHeight int `yaml:"hud_height"` // HUD strip at the top; the play field starts below it
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	Y               int `yaml:"y"`
	Speed           int `yaml:"speed"`
	MaxLives        int `yaml:"max_lives"`
	MaxBombs        int `yaml:"max_bombs"`
	InvincibleTicks int `yaml:"invincible_ticks"` // Grace window after a hit
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	Capacity    int `yaml:"capacity"`
	HitPoints   int `yaml:"hit_points"`   // Score for destroying one
	DodgePoints int `yaml:"dodge_points"` // Score for one leaving the field
}

// MissileConfig defines player missiles.
type MissileConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Speed    int `yaml:"speed"`
	Capacity int `yaml:"capacity"`
	MaxTurn  int `yaml:"max_turn"` // Lateral steering limit for homing missiles
}

// GiftConfig defines power-up pickups.
type GiftConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	Speed       int `yaml:"speed"`
	Capacity    int `yaml:"capacity"`
	Life        int `yaml:"life"`
	FadeTicks   int `yaml:"fade_ticks"`   // Gifts flicker once life drops to this
	SpawnTicks  int `yaml:"spawn_ticks"`  // Minimum ticks between gifts
	SpawnChance int `yaml:"spawn_chance"` // Percent chance per eligible tick
}

// ParticleConfig defines debris particles and burst sizes.
type ParticleConfig struct {
	Capacity    int `yaml:"capacity"`
	Life        int `yaml:"life"`
	HitBurst    int `yaml:"hit_burst"`
	GiftBurst   int `yaml:"gift_burst"`
	BombBurst   int `yaml:"bomb_burst"`
	LaserBurst  int `yaml:"laser_burst"`
	FreezeBurst int `yaml:"freeze_burst"`
}

// PowerUpConfig defines power-up timer durations in ticks.
type PowerUpConfig struct {
	FreezeTicks       int `yaml:"freeze_ticks"`
	HomingTicks       int `yaml:"homing_ticks"`
	LaserTicks        int `yaml:"laser_ticks"`
	ShieldTicks       int `yaml:"shield_ticks"`
	FreezeClearMargin int `yaml:"freeze_clear_margin"` // Obstacles this close above the player row are cleared by freeze
}

// DifficultyConfig defines how obstacle speed and spawn cadence scale with progress.
type DifficultyConfig struct {
	Enabled       bool `yaml:"enabled"`
	BaseSpeed     int  `yaml:"base_speed"`
	MaxSpeed      int  `yaml:"max_speed"`
	Step          int  `yaml:"step"` // Progress points per difficulty level
	IntervalStart int  `yaml:"interval_start"`
	IntervalStep  int  `yaml:"interval_step"`
	IntervalMin   int  `yaml:"interval_min"`
}

// DemoConfig tunes the autoplay controller.
type DemoConfig struct {
	DangerBand    int `yaml:"danger_band"`    // Pixels above the player row considered threatening
	WidthMargin   int `yaml:"width_margin"`   // Extra horizontal margin when dodging
	DeadZone      int `yaml:"dead_zone"`      // Alignment tolerance in pixels
	FireEvery     int `yaml:"fire_every"`     // Periodic fire cadence in ticks
	BombThreshold int `yaml:"bomb_threshold"` // Active obstacles that trigger a bomb
	GameOverTicks int `yaml:"gameover_ticks"` // Game-over screen auto advance
}

// DifficultyPreset represents a named difficulty mode.
type DifficultyPreset string

const (
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// The empty string keeps the config's own setting.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch s {
	case "":
		return "", nil
	case string(DifficultyNormal):
		return DifficultyNormal, nil
	case string(DifficultyFixed):
		return DifficultyFixed, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want normal or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}

// Validate checks that sizes, capacities and periods are usable.
func (c DodgeConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.max_lives", c.Player.MaxLives)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.height", c.Obstacles.Height)
	positive("obstacles.capacity", c.Obstacles.Capacity)
	positive("missiles.width", c.Missiles.Width)
	positive("missiles.height", c.Missiles.Height)
	positive("missiles.speed", c.Missiles.Speed)
	positive("missiles.capacity", c.Missiles.Capacity)
	positive("gifts.width", c.Gifts.Width)
	positive("gifts.height", c.Gifts.Height)
	positive("gifts.capacity", c.Gifts.Capacity)
	positive("gifts.life", c.Gifts.Life)
	positive("particles.capacity", c.Particles.Capacity)
	positive("particles.life", c.Particles.Life)
	positive("difficulty.step", c.Difficulty.Step)
	positive("difficulty.interval_min", c.Difficulty.IntervalMin)

	nonNegative("player.max_bombs", c.Player.MaxBombs)
	nonNegative("player.speed", c.Player.Speed)
	nonNegative("gifts.speed", c.Gifts.Speed)
	nonNegative("difficulty.base_speed", c.Difficulty.BaseSpeed)
	nonNegative("demo.danger_band", c.Demo.DangerBand)
	nonNegative("demo.dead_zone", c.Demo.DeadZone)

	if c.Difficulty.MaxSpeed < c.Difficulty.BaseSpeed {
		errs = append(errs, fmt.Errorf("difficulty.max_speed must be at least base_speed (%d), got %d",
			c.Difficulty.BaseSpeed, c.Difficulty.MaxSpeed))
	}
	if c.Field.Width < c.Player.Width || c.Field.Width <= c.Obstacles.Width || c.Field.Width <= c.Gifts.Width {
		errs = append(errs, errors.New("field.width must exceed player, obstacle and gift widths"))
	}
	if c.Field.HUDHeight < 0 || c.Field.HUDHeight >= c.Player.Y {
		errs = append(errs, fmt.Errorf("field.hud_height must be in [0, player.y), got %d", c.Field.HUDHeight))
	}
	if c.Player.Y+c.Player.Height > c.Field.Height {
		errs = append(errs, errors.New("player must fit inside the field"))
	}
	if c.Gifts.SpawnChance < 0 || c.Gifts.SpawnChance > 100 {
		errs = append(errs, fmt.Errorf("gifts.spawn_chance must be in [0, 100], got %d", c.Gifts.SpawnChance))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid dodge config: %w", errors.Join(errs...))
	}
	return nil
}
