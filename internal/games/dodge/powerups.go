package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// PowerUp is the reward granted by shooting a gift.
type PowerUp int

const (
	PowerBomb PowerUp = iota // +1 bomb, capped
	PowerLife                // +1 life, capped
	PowerFreeze
	PowerHoming
	PowerLaser
	PowerShield
	powerUpCount
)

// String returns the name used in diagnostic events.
func (p PowerUp) String() string {
	switch p {
	case PowerBomb:
		return "bomb+1"
	case PowerLife:
		return "life+1"
	case PowerFreeze:
		return "freeze"
	case PowerHoming:
		return "homing"
	case PowerLaser:
		return "laser"
	case PowerShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Timer names one of the power-up countdowns.
type Timer int

const (
	TimerFreeze Timer = iota
	TimerHoming
	TimerLaser
	TimerShield
	timerCount
)

// String returns the HUD letter for the timer.
func (t Timer) String() string {
	switch t {
	case TimerFreeze:
		return "F"
	case TimerHoming:
		return "H"
	case TimerLaser:
		return "L"
	case TimerShield:
		return "S"
	default:
		return "?"
	}
}

// TimerBank holds the four independent power-up countdowns.
type TimerBank struct {
	left [timerCount]int
}

// Set starts (or restarts) a timer.
func (b *TimerBank) Set(t Timer, ticks int) {
	if t < 0 || t >= timerCount {
		return
	}
	b.left[t] = max(0, ticks)
}

// Active reports whether a timer is running.
func (b *TimerBank) Active(t Timer) bool {
	return b.Remaining(t) > 0
}

// Remaining returns the ticks left on a timer.
func (b *TimerBank) Remaining(t Timer) int {
	if t < 0 || t >= timerCount {
		return 0
	}
	return b.left[t]
}

// Tick decrements every timer by one, saturating at zero.
func (b *TimerBank) Tick() {
	for i := range b.left {
		b.left[i] = core.SatSub(b.left[i], 1)
	}
}

// Mask packs the running timers into a bit set, one bit per Timer.
func (b *TimerBank) Mask() uint8 {
	var m uint8
	for i, v := range b.left {
		if v > 0 {
			m |= 1 << i
		}
	}
	return m
}

// Reset stops every timer.
func (b *TimerBank) Reset() {
	b.left = [timerCount]int{}
}

// grant applies a power-up.
func (s *Session) grant(p PowerUp) {
	pc := s.cfg.PowerUps
	switch p {
	case PowerBomb:
		s.player.Bombs = core.SatAdd(s.player.Bombs, 1, s.cfg.Player.MaxBombs)
	case PowerLife:
		s.player.Lives = core.SatAdd(s.player.Lives, 1, s.cfg.Player.MaxLives)
	case PowerFreeze:
		s.timers.Set(TimerFreeze, pc.FreezeTicks)
		s.clearNearPlayer()
	case PowerHoming:
		s.timers.Set(TimerHoming, pc.HomingTicks)
	case PowerLaser:
		s.timers.Set(TimerLaser, pc.LaserTicks)
	case PowerShield:
		s.timers.Set(TimerShield, pc.ShieldTicks)
	}
	s.events.Info("gift", "powerup", p.String(), "lives", s.player.Lives, "bombs", s.player.Bombs)
}

// clearNearPlayer removes obstacles whose bottom edge is inside the danger
// band above the player row. Cleared obstacles score nothing.
func (s *Session) clearNearPlayer() {
	limit := s.cfg.Player.Y - s.cfg.PowerUps.FreezeClearMargin
	for i := range s.pools.Obstacles {
		o := &s.pools.Obstacles[i]
		if !o.Active || o.Y+s.cfg.Obstacles.Height < limit {
			continue
		}
		cx, cy := s.obstacleRect(*o).Center()
		s.pools.Burst(s.rng, cx, cy, s.cfg.Particles.FreezeBurst, s.cfg.Particles.Life)
		o.Active = false
	}
}
