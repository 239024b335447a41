package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration.
// It matches the embedded defaults/dodge.yaml and is the fallback when the
// embedded file cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: FieldConfig{
			Width:     240,
			Height:    135,
			HUDHeight: 24,
		},
		Player: PlayerConfig{
			Width:           24,
			Height:          8,
			Y:               122,
			Speed:           5,
			MaxLives:        3,
			MaxBombs:        3,
			InvincibleTicks: 20, // 1 second at 20 FPS
		},
		Obstacles: ObstacleConfig{
			Width:       12,
			Height:      8,
			Capacity:    6,
			HitPoints:   2,
			DodgePoints: 1,
		},
		Missiles: MissileConfig{
			Width:    3,
			Height:   6,
			Speed:    4,
			Capacity: 8,
			MaxTurn:  6,
		},
		Gifts: GiftConfig{
			Width:       10,
			Height:      10,
			Speed:       1,
			Capacity:    2,
			Life:        80,
			FadeTicks:   20,
			SpawnTicks:  200,
			SpawnChance: 15,
		},
		Particles: ParticleConfig{
			Capacity:    36,
			Life:        8,
			HitBurst:    6,
			GiftBurst:   4,
			BombBurst:   4,
			LaserBurst:  3,
			FreezeBurst: 3,
		},
		PowerUps: PowerUpConfig{
			FreezeTicks:       100, // 5 seconds
			HomingTicks:       200, // 10 seconds
			LaserTicks:        100, // 5 seconds
			ShieldTicks:       160, // 8 seconds
			FreezeClearMargin: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			BaseSpeed:     2,
			MaxSpeed:      6,
			Step:          10,
			IntervalStart: 30,
			IntervalStep:  5,
			IntervalMin:   10,
		},
		Demo: DemoConfig{
			DangerBand:    30,
			WidthMargin:   4,
			DeadZone:      4,
			FireEvery:     8,
			BombThreshold: 4,
			GameOverTicks: 40,
		},
		BootSeed: 12345,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
