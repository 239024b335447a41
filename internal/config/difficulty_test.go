package config

import "testing"

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultDodgeConfig().Difficulty)

	tests := []struct {
		progress int
		frozen   bool
		want     int
	}{
		{0, false, 2},
		{9, false, 2},
		{10, false, 3},
		{25, false, 4},
		{40, false, 6},
		{1000, false, 6}, // capped
		{1000, true, 0},  // freeze stops everything
		{0, true, 0},
	}

	for _, tc := range tests {
		if got := d.Speed(tc.progress, tc.frozen); got != tc.want {
			t.Errorf("Speed(%d, %v) = %d, want %d", tc.progress, tc.frozen, got, tc.want)
		}
	}
}

func TestDifficultySpawnInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultDodgeConfig().Difficulty)

	tests := []struct {
		progress int
		want     int
	}{
		{0, 30},
		{10, 25},
		{20, 20},
		{39, 20},
		{40, 10},
		{50, 10},
		{500, 10}, // floor
	}

	for _, tc := range tests {
		if got := d.SpawnInterval(tc.progress); got != tc.want {
			t.Errorf("SpawnInterval(%d) = %d, want %d", tc.progress, got, tc.want)
		}
	}
}

func TestDifficultyProgress(t *testing.T) {
	d := NewDifficultyManager(DefaultDodgeConfig().Difficulty)

	if got := d.Progress(57, 40); got != 17 {
		t.Errorf("Progress(57, 40) = %d, want 17", got)
	}
	if got := d.Progress(40, 40); got != 0 {
		t.Errorf("Progress at baseline = %d, want 0", got)
	}
	if got := d.Progress(10, 40); got != 0 {
		t.Errorf("Progress below baseline = %d, want 0", got)
	}
}

func TestDifficultyFixed(t *testing.T) {
	cfg := DefaultDodgeConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty)

	if got := d.Level(500); got != 0 {
		t.Errorf("fixed Level = %d, want 0", got)
	}
	if got := d.Speed(500, false); got != cfg.Difficulty.BaseSpeed {
		t.Errorf("fixed Speed = %d, want base %d", got, cfg.Difficulty.BaseSpeed)
	}
	if got := d.SpawnInterval(500); got != cfg.Difficulty.IntervalStart {
		t.Errorf("fixed SpawnInterval = %d, want start %d", got, cfg.Difficulty.IntervalStart)
	}
}

func TestDifficultyZeroStep(t *testing.T) {
	cfg := DefaultDodgeConfig().Difficulty
	cfg.Step = 0
	d := NewDifficultyManager(cfg)

	// Must not divide by zero
	if got := d.Speed(3, false); got != 5 {
		t.Errorf("Speed with step clamped to 1 = %d, want 5", got)
	}
}
