package config

// DifficultyManager derives obstacle fall speed and spawn cadence from
// progress (score minus the difficulty baseline). All results are integers
// so the simulation stays deterministic.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.Step <= 0 {
		cfg.Step = 1 // Prevent division by zero
	}
	return &DifficultyManager{cfg: cfg}
}

// Progress returns score - baseline, never negative.
func (d *DifficultyManager) Progress(score, baseline int) int {
	if score <= baseline {
		return 0
	}
	return score - baseline
}

// Level returns the number of completed difficulty steps.
func (d *DifficultyManager) Level(progress int) int {
	if !d.cfg.Enabled || progress <= 0 {
		return 0
	}
	return progress / d.cfg.Step
}

// Speed returns the obstacle fall speed in pixels per tick:
// min(max, base + level). Frozen obstacles do not move.
func (d *DifficultyManager) Speed(progress int, frozen bool) int {
	if frozen {
		return 0
	}
	return min(d.cfg.MaxSpeed, d.cfg.BaseSpeed+d.Level(progress))
}

// SpawnInterval returns the ticks between obstacle spawns:
// max(min, start - level*step).
func (d *DifficultyManager) SpawnInterval(progress int) int {
	return max(d.cfg.IntervalMin, d.cfg.IntervalStart-d.Level(progress)*d.cfg.IntervalStep)
}
